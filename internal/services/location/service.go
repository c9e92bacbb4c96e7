package location

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Service manages court location configurations
type Service struct {
	storage storage.Storage
	bus     *bus.Bus
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a location service
func New(storage storage.Storage, b *bus.Bus, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		clock:   clk,
		logger:  logger.With(slog.String("component", "location")),
	}
}

// Params carries the editable location fields
type Params struct {
	Name         string
	SessionFee   decimal.Decimal
	Currency     string
	CourtCharges []model.CourtCharge
	PlayerLimits []model.PlayerLimit
}

// Create adds a location. Nil charge or limit tables get the defaults.
func (s *Service) Create(ctx context.Context, params Params) (*model.Location, error) {
	locations, err := s.storage.LoadLocations(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	loc := model.Location{
		ID:           model.LocationID(uuid.NewString()),
		Name:         params.Name,
		SessionFee:   params.SessionFee,
		Currency:     params.Currency,
		CourtCharges: params.CourtCharges,
		PlayerLimits: params.PlayerLimits,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if loc.Currency == "" {
		loc.Currency = model.DefaultCurrency
	}
	if loc.CourtCharges == nil {
		loc.CourtCharges = model.DefaultCourtCharges()
	}
	if loc.PlayerLimits == nil {
		loc.PlayerLimits = model.DefaultPlayerLimits()
	}

	locations = append(locations, loc)
	if err := s.storage.SaveLocations(ctx, locations); err != nil {
		return nil, err
	}
	s.bus.Publish(model.TopicLocations)

	s.logger.Info("location created", slog.String("location_id", string(loc.ID)), slog.String("name", loc.Name))
	return &loc, nil
}

// Get retrieves a location by id
func (s *Service) Get(ctx context.Context, id model.LocationID) (*model.Location, error) {
	locations, err := s.storage.LoadLocations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], nil
		}
	}
	return nil, model.ErrLocationNotFound
}

// List returns all locations in insertion order
func (s *Service) List(ctx context.Context) ([]model.Location, error) {
	return s.storage.LoadLocations(ctx)
}

// Update replaces a location's editable fields
func (s *Service) Update(ctx context.Context, id model.LocationID, params Params) (*model.Location, error) {
	locations, err := s.storage.LoadLocations(ctx)
	if err != nil {
		return nil, err
	}

	for i := range locations {
		if locations[i].ID != id {
			continue
		}
		loc := &locations[i]
		loc.Name = params.Name
		loc.SessionFee = params.SessionFee
		if params.Currency != "" {
			loc.Currency = params.Currency
		}
		if params.CourtCharges != nil {
			loc.CourtCharges = params.CourtCharges
		}
		if params.PlayerLimits != nil {
			loc.PlayerLimits = params.PlayerLimits
		}
		loc.UpdatedAt = s.clock.Now()

		if err := s.storage.SaveLocations(ctx, locations); err != nil {
			return nil, err
		}
		s.bus.Publish(model.TopicLocations)

		updated := *loc
		return &updated, nil
	}
	return nil, model.ErrLocationNotFound
}

// Delete removes a location
func (s *Service) Delete(ctx context.Context, id model.LocationID) error {
	locations, err := s.storage.LoadLocations(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range locations {
		if locations[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrLocationNotFound
	}

	locations = append(locations[:idx], locations[idx+1:]...)
	if err := s.storage.SaveLocations(ctx, locations); err != nil {
		return err
	}
	s.bus.Publish(model.TopicLocations)
	return nil
}
