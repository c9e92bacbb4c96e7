package memory

import (
	"context"
	"sync"

	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   []model.Player
	payments  []model.Payment
	locations []model.Location
	roles     []model.Role

	kiliSeq int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.players), nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = copySlice(players)
	return nil
}

func (s *Storage) LoadPayments(ctx context.Context) ([]model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.payments), nil
}

func (s *Storage) SavePayments(ctx context.Context, payments []model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = copySlice(payments)
	return nil
}

func (s *Storage) LoadLocations(ctx context.Context) ([]model.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.locations), nil
}

func (s *Storage) SaveLocations(ctx context.Context, locations []model.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = copySlice(locations)
	return nil
}

func (s *Storage) LoadRoles(ctx context.Context) ([]model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.roles), nil
}

func (s *Storage) SaveRoles(ctx context.Context, roles []model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles = copySlice(roles)
	return nil
}

func (s *Storage) NextKiliSequence(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kiliSeq++
	return s.kiliSeq, nil
}

func (s *Storage) Close() error {
	return nil
}

// copySlice shields callers from later mutation of the stored slice
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
