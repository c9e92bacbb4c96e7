package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each collection is stored as a single JSON blob under one key, matching
// the whole-collection replace-on-write contract.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// loadCollection reads and unmarshals a collection blob into out. A missing
// key or corrupt blob leaves out as the empty collection.
func (s *Storage) loadCollection(ctx context.Context, name string, out any) error {
	data, err := s.client.Get(ctx, collectionKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt blob: fall back to the empty collection
		return nil
	}
	return nil
}

func (s *Storage) saveCollection(ctx context.Context, name string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, collectionKey(name), data, 0).Err()
}

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	players := []model.Player{}
	if err := s.loadCollection(ctx, collectionPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return s.saveCollection(ctx, collectionPlayers, players)
}

func (s *Storage) LoadPayments(ctx context.Context) ([]model.Payment, error) {
	payments := []model.Payment{}
	if err := s.loadCollection(ctx, collectionPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Storage) SavePayments(ctx context.Context, payments []model.Payment) error {
	return s.saveCollection(ctx, collectionPayments, payments)
}

func (s *Storage) LoadLocations(ctx context.Context) ([]model.Location, error) {
	locations := []model.Location{}
	if err := s.loadCollection(ctx, collectionLocations, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Storage) SaveLocations(ctx context.Context, locations []model.Location) error {
	return s.saveCollection(ctx, collectionLocations, locations)
}

func (s *Storage) LoadRoles(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := s.loadCollection(ctx, collectionRoles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Storage) SaveRoles(ctx context.Context, roles []model.Role) error {
	return s.saveCollection(ctx, collectionRoles, roles)
}

func (s *Storage) NextKiliSequence(ctx context.Context) (int, error) {
	n, err := s.client.Incr(ctx, kiliSeqKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
