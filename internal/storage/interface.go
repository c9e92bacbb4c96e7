package storage

import (
	"context"

	"github.com/kiliclub/clubdesk/internal/model"
)

// Storage defines the interface for data persistence.
//
// Each collection is loaded and saved as a whole; Save replaces the entire
// collection (last writer wins, no partial updates). A corrupt serialized
// collection degrades to an empty one on load rather than erroring.
type Storage interface {
	// Player collection
	LoadPlayers(ctx context.Context) ([]model.Player, error)
	SavePlayers(ctx context.Context, players []model.Player) error

	// Payment collection
	LoadPayments(ctx context.Context) ([]model.Payment, error)
	SavePayments(ctx context.Context, payments []model.Payment) error

	// Location configuration collection
	LoadLocations(ctx context.Context) ([]model.Location, error)
	SaveLocations(ctx context.Context, locations []model.Location) error

	// Role configuration collection
	LoadRoles(ctx context.Context) ([]model.Role, error)
	SaveRoles(ctx context.Context, roles []model.Role) error

	// NextKiliSequence increments and returns the player display-id
	// sequence. The sequence only advances, so display ids stay unique
	// even after player deletions.
	NextKiliSequence(ctx context.Context) (int, error)

	// Close releases any underlying resources
	Close() error
}
