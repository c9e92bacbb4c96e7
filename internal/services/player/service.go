package player

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Service manages the player collection
type Service struct {
	storage storage.Storage
	bus     *bus.Bus
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a player service
func New(storage storage.Storage, b *bus.Bus, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		clock:   clk,
		logger:  logger.With(slog.String("component", "player")),
	}
}

// Params carries the editable player fields
type Params struct {
	FirstName     string
	LastName      string
	Email         string
	BirthDate     *time.Time
	ContactNumber string
	CountryCode   string
	DuprID        string
	Role          string
	Notes         string
}

// Create adds a new player with a zero balance and a fresh display id
func (s *Service) Create(ctx context.Context, params Params) (*model.Player, error) {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := s.storage.NextKiliSequence(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	role := params.Role
	if role == "" {
		role = "Player"
	}

	p := model.Player{
		ID:            model.PlayerID(uuid.NewString()),
		KiliID:        model.FormatKiliID(seq),
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Email:         params.Email,
		BirthDate:     params.BirthDate,
		ContactNumber: params.ContactNumber,
		CountryCode:   params.CountryCode,
		DuprID:        params.DuprID,
		Role:          role,
		Notes:         params.Notes,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	players = append(players, p)
	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return nil, err
	}
	s.bus.Publish(model.TopicPlayers)

	s.logger.Info("player created",
		slog.String("player_id", string(p.ID)),
		slog.String("kili_id", p.KiliID))

	return &p, nil
}

// Get retrieves a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// List returns the filtered page of players and the total match count
func (s *Service) List(ctx context.Context, filter model.PlayerFilter, page, pageSize int) ([]model.Player, int, error) {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := model.FilterPlayers(players, filter)
	return model.Paginate(matched, page, pageSize), len(matched), nil
}

// Update replaces a player's editable fields. Balance, KiliID and CreatedAt
// are never touched here.
func (s *Service) Update(ctx context.Context, id model.PlayerID, params Params) (*model.Player, error) {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range players {
		if players[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}

	p := &players[idx]
	p.FirstName = params.FirstName
	p.LastName = params.LastName
	p.Email = params.Email
	p.BirthDate = params.BirthDate
	p.ContactNumber = params.ContactNumber
	p.CountryCode = params.CountryCode
	p.DuprID = params.DuprID
	if params.Role != "" {
		p.Role = params.Role
	}
	p.Notes = params.Notes
	p.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return nil, err
	}
	s.bus.Publish(model.TopicPlayers)

	updated := *p
	return &updated, nil
}

// SetActive toggles a player's active flag, independent of balance
func (s *Service) SetActive(ctx context.Context, id model.PlayerID, active bool) (*model.Player, error) {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range players {
		if players[i].ID != id {
			continue
		}
		players[i].IsActive = active
		players[i].UpdatedAt = s.clock.Now()
		if err := s.storage.SavePlayers(ctx, players); err != nil {
			return nil, err
		}
		s.bus.Publish(model.TopicPlayers)
		p := players[i]
		return &p, nil
	}
	return nil, model.ErrPlayerNotFound
}

// Delete removes a player. Payments referencing the player are left in
// place; they simply stop resolving to a live player.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range players {
		if players[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrPlayerNotFound
	}

	players = append(players[:idx], players[idx+1:]...)
	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return err
	}
	s.bus.Publish(model.TopicPlayers)

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// DeleteAll clears the player collection
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.storage.SavePlayers(ctx, []model.Player{}); err != nil {
		return err
	}
	s.bus.Publish(model.TopicPlayers)
	return nil
}
