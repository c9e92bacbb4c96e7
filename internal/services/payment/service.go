package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/ledger"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Service manages the payment collection and keeps player balances
// reconciled with it. Every mutation here re-runs the ledger over the full
// collections and publishes change notifications for both.
type Service struct {
	storage storage.Storage
	bus     *bus.Bus
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a payment service
func New(storage storage.Storage, b *bus.Bus, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		clock:   clk,
		logger:  logger.With(slog.String("component", "payment")),
	}
}

// CreateParams carries the fields of a new payment
type CreateParams struct {
	Type     model.PaymentType
	PlayerID model.PlayerID // required when Type is player
	Amount   decimal.Decimal
	Currency string
	Notes    string
}

// UpdateParams carries the editable fields of an existing payment
type UpdateParams struct {
	Type     model.PaymentType
	PlayerID model.PlayerID
	Amount   decimal.Decimal
	Notes    string
}

func validate(t model.PaymentType, playerID model.PlayerID, amount decimal.Decimal, notes string) error {
	if !t.Valid() {
		return model.ErrInvalidPaymentType
	}
	if t == model.PaymentTypePlayer && playerID == "" {
		return model.ErrPlayerRequired
	}
	if amount.IsZero() {
		return model.ErrZeroAmount
	}
	if len(notes) > model.MaxNotesLength {
		return model.ErrNotesTooLong
	}
	return nil
}

// Create records a new payment. Player payments snapshot the player's name
// and display id at creation time; the snapshot goes stale if the player is
// later renamed, matching how listings are meant to read.
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Payment, error) {
	if err := validate(params.Type, params.PlayerID, params.Amount, params.Notes); err != nil {
		return nil, err
	}

	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	p := model.Payment{
		ID:        model.PaymentID(uuid.NewString()),
		Type:      params.Type,
		Amount:    params.Amount,
		Currency:  params.Currency,
		Notes:     params.Notes,
		Timestamp: s.clock.Now(),
	}
	if p.Currency == "" {
		p.Currency = model.DefaultCurrency
	}

	if params.Type == model.PaymentTypePlayer {
		owner := findPlayer(players, params.PlayerID)
		if owner == nil {
			return nil, model.ErrPlayerNotFound
		}
		p.PlayerID = owner.ID
		p.PlayerName = owner.FullName()
		p.PlayerKiliID = owner.KiliID
	}

	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}

	// Newest first, matching the ledger views
	payments = append([]model.Payment{p}, payments...)

	if err := s.saveAndReconcile(ctx, payments, players); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		slog.String("payment_id", string(p.ID)),
		slog.String("type", string(p.Type)),
		slog.String("amount", p.Amount.String()))

	return &p, nil
}

// Get retrieves a payment by id, archived or not
func (s *Service) Get(ctx context.Context, id model.PaymentID) (*model.Payment, error) {
	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, model.ErrPaymentNotFound
}

// List returns the filtered page of payments and the total match count
func (s *Service) List(ctx context.Context, filter model.PaymentFilter, page, pageSize int) ([]model.Payment, int, error) {
	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := model.FilterPayments(payments, filter)
	return model.Paginate(matched, page, pageSize), len(matched), nil
}

// Update edits a payment in place. Timestamp and currency are immutable.
// Changing the player re-snapshots the name fields from the current player.
func (s *Service) Update(ctx context.Context, id model.PaymentID, params UpdateParams) (*model.Payment, error) {
	if err := validate(params.Type, params.PlayerID, params.Amount, params.Notes); err != nil {
		return nil, err
	}

	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range payments {
		if payments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrPaymentNotFound
	}

	p := &payments[idx]
	p.Type = params.Type
	p.Amount = params.Amount
	p.Notes = params.Notes

	if params.Type == model.PaymentTypePlayer {
		if params.PlayerID != p.PlayerID {
			owner := findPlayer(players, params.PlayerID)
			if owner == nil {
				return nil, model.ErrPlayerNotFound
			}
			p.PlayerID = owner.ID
			p.PlayerName = owner.FullName()
			p.PlayerKiliID = owner.KiliID
		}
	} else {
		p.PlayerID = ""
		p.PlayerName = ""
		p.PlayerKiliID = ""
	}

	if err := s.saveAndReconcile(ctx, payments, players); err != nil {
		return nil, err
	}

	updated := *p
	return &updated, nil
}

// SetArchived soft-deletes or restores a payment. Archived payments stop
// counting toward the owning player's balance but stay in storage.
func (s *Service) SetArchived(ctx context.Context, id model.PaymentID, archived bool) (*model.Payment, error) {
	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		if payments[i].ID != id {
			continue
		}
		payments[i].Archived = archived
		if err := s.saveAndReconcile(ctx, payments, players); err != nil {
			return nil, err
		}
		p := payments[i]
		return &p, nil
	}
	return nil, model.ErrPaymentNotFound
}

// Delete permanently removes a payment
func (s *Service) Delete(ctx context.Context, id model.PaymentID) error {
	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return err
	}
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range payments {
		if payments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrPaymentNotFound
	}

	payments = append(payments[:idx], payments[idx+1:]...)
	if err := s.saveAndReconcile(ctx, payments, players); err != nil {
		return err
	}

	s.logger.Info("payment deleted", slog.String("payment_id", string(id)))
	return nil
}

// DeleteAll clears the payment collection and zeroes every balance
func (s *Service) DeleteAll(ctx context.Context) error {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return err
	}
	return s.saveAndReconcile(ctx, []model.Payment{}, players)
}

// saveAndReconcile persists the payment collection, restores the balance
// invariant over the player collection, and notifies both topics.
func (s *Service) saveAndReconcile(ctx context.Context, payments []model.Payment, players []model.Player) error {
	if err := s.storage.SavePayments(ctx, payments); err != nil {
		return err
	}
	s.bus.Publish(model.TopicPayments)

	reconciled := ledger.Reconcile(players, payments)
	if err := s.storage.SavePlayers(ctx, reconciled); err != nil {
		return err
	}
	s.bus.Publish(model.TopicPlayers)
	return nil
}

func findPlayer(players []model.Player, id model.PlayerID) *model.Player {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}
