package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/mocks"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage/memory"
	"github.com/kiliclub/clubdesk/internal/testutil"
)

type PaymentServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.store, bus.New(testutil.NopLogger()), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *PaymentServiceSuite) seedPlayer(id model.PlayerID, first, last string) {
	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	players = append(players, model.Player{
		ID:        id,
		KiliID:    model.FormatKiliID(len(players) + 1),
		FirstName: first,
		LastName:  last,
		IsActive:  true,
	})
	s.Require().NoError(s.store.SavePlayers(s.ctx, players))
}

func (s *PaymentServiceSuite) playerBalance(id model.PlayerID) decimal.Decimal {
	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	for i := range players {
		if players[i].ID == id {
			return players[i].Balance
		}
	}
	s.FailNow("player not found", string(id))
	return decimal.Zero
}

func (s *PaymentServiceSuite) TestCreatePlayerPayment() {
	s.seedPlayer("p1", "Asha", "Mushi")

	p, err := s.service.Create(s.ctx, CreateParams{
		Type:     model.PaymentTypePlayer,
		PlayerID: "p1",
		Amount:   decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	s.NotEmpty(p.ID)
	s.Equal("Asha Mushi", p.PlayerName)
	s.Equal("Kili-001", p.PlayerKiliID)
	s.Equal(model.DefaultCurrency, p.Currency)
	s.Equal(s.clock.CurrentTime, p.Timestamp)
	s.False(p.Archived)

	s.True(s.playerBalance("p1").Equal(decimal.NewFromInt(50000)))
}

func (s *PaymentServiceSuite) TestCreateCourtPaymentNeedsNoPlayer() {
	p, err := s.service.Create(s.ctx, CreateParams{
		Type:   model.PaymentTypeCourt,
		Amount: decimal.NewFromInt(-100000),
	})
	s.Require().NoError(err)
	s.Empty(p.PlayerID)
	s.Empty(p.PlayerName)
}

func (s *PaymentServiceSuite) TestCreateValidation() {
	s.seedPlayer("p1", "Asha", "Mushi")

	cases := []struct {
		name   string
		params CreateParams
		want   error
	}{
		{
			name:   "unknown type",
			params: CreateParams{Type: "membership", Amount: decimal.NewFromInt(1)},
			want:   model.ErrInvalidPaymentType,
		},
		{
			name:   "player payment without player",
			params: CreateParams{Type: model.PaymentTypePlayer, Amount: decimal.NewFromInt(1)},
			want:   model.ErrPlayerRequired,
		},
		{
			name:   "zero amount",
			params: CreateParams{Type: model.PaymentTypePlayer, PlayerID: "p1"},
			want:   model.ErrZeroAmount,
		},
		{
			name: "notes too long",
			params: CreateParams{
				Type:     model.PaymentTypePlayer,
				PlayerID: "p1",
				Amount:   decimal.NewFromInt(1),
				Notes:    strings.Repeat("x", model.MaxNotesLength+1),
			},
			want: model.ErrNotesTooLong,
		},
		{
			name:   "unknown player",
			params: CreateParams{Type: model.PaymentTypePlayer, PlayerID: "ghost", Amount: decimal.NewFromInt(1)},
			want:   model.ErrPlayerNotFound,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Create(s.ctx, tc.params)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *PaymentServiceSuite) TestCreatePrependsNewestFirst() {
	s.seedPlayer("p1", "Asha", "Mushi")

	first, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(1),
	})
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(2),
	})
	s.Require().NoError(err)

	payments, _, err := s.service.List(s.ctx, model.PaymentFilter{}, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Equal(second.ID, payments[0].ID)
	s.Equal(first.ID, payments[1].ID)
}

func (s *PaymentServiceSuite) TestArchiveExcludesFromBalance() {
	s.seedPlayer("p1", "Asha", "Mushi")
	p, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	archived, err := s.service.SetArchived(s.ctx, p.ID, true)
	s.Require().NoError(err)
	s.True(archived.Archived)
	s.True(s.playerBalance("p1").IsZero())

	restored, err := s.service.SetArchived(s.ctx, p.ID, false)
	s.Require().NoError(err)
	s.False(restored.Archived)
	s.True(s.playerBalance("p1").Equal(decimal.NewFromInt(50000)))
}

func (s *PaymentServiceSuite) TestArchivedHiddenByDefault() {
	s.seedPlayer("p1", "Asha", "Mushi")
	p, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(1),
	})
	s.Require().NoError(err)
	_, err = s.service.SetArchived(s.ctx, p.ID, true)
	s.Require().NoError(err)

	visible, total, err := s.service.List(s.ctx, model.PaymentFilter{}, 0, 0)
	s.Require().NoError(err)
	s.Empty(visible)
	s.Zero(total)

	all, _, err := s.service.List(s.ctx, model.PaymentFilter{IncludeArchived: true}, 0, 0)
	s.Require().NoError(err)
	s.Len(all, 1)

	only, _, err := s.service.List(s.ctx, model.PaymentFilter{ArchivedOnly: true}, 0, 0)
	s.Require().NoError(err)
	s.Len(only, 1)

	// Get still resolves archived payments
	got, err := s.service.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(got.Archived)
}

func (s *PaymentServiceSuite) TestUpdateMovesBalanceBetweenPlayers() {
	s.seedPlayer("p1", "Asha", "Mushi")
	s.seedPlayer("p2", "Juma", "Kessy")
	p, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, p.ID, UpdateParams{
		Type:     model.PaymentTypePlayer,
		PlayerID: "p2",
		Amount:   decimal.NewFromInt(30000),
	})
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p2"), updated.PlayerID)
	s.Equal("Juma Kessy", updated.PlayerName)
	s.Equal(p.Timestamp, updated.Timestamp)

	s.True(s.playerBalance("p1").IsZero())
	s.True(s.playerBalance("p2").Equal(decimal.NewFromInt(30000)))
}

func (s *PaymentServiceSuite) TestUpdateToCourtClearsSnapshot() {
	s.seedPlayer("p1", "Asha", "Mushi")
	p, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, p.ID, UpdateParams{
		Type:   model.PaymentTypeCourt,
		Amount: decimal.NewFromInt(-50000),
	})
	s.Require().NoError(err)

	s.Empty(updated.PlayerID)
	s.Empty(updated.PlayerName)
	s.Empty(updated.PlayerKiliID)
	s.True(s.playerBalance("p1").IsZero())
}

func (s *PaymentServiceSuite) TestUpdateNotFound() {
	_, err := s.service.Update(s.ctx, "ghost", UpdateParams{
		Type: model.PaymentTypeCourt, Amount: decimal.NewFromInt(1),
	})
	s.ErrorIs(err, model.ErrPaymentNotFound)
}

func (s *PaymentServiceSuite) TestDeleteRemovesAndReconciles() {
	s.seedPlayer("p1", "Asha", "Mushi")
	p, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, p.ID))
	s.True(s.playerBalance("p1").IsZero())

	s.ErrorIs(s.service.Delete(s.ctx, p.ID), model.ErrPaymentNotFound)
}

func (s *PaymentServiceSuite) TestDeleteAll() {
	s.seedPlayer("p1", "Asha", "Mushi")
	_, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(50000),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteAll(s.ctx))

	payments, total, err := s.service.List(s.ctx, model.PaymentFilter{IncludeArchived: true}, 0, 0)
	s.Require().NoError(err)
	s.Empty(payments)
	s.Zero(total)
	s.True(s.playerBalance("p1").IsZero())
}

func (s *PaymentServiceSuite) TestListFilters() {
	s.seedPlayer("p1", "Asha", "Mushi")
	s.seedPlayer("p2", "Juma", "Kessy")

	_, err := s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(1), Notes: "monthly dues",
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)
	_, err = s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypePlayer, PlayerID: "p2", Amount: decimal.NewFromInt(2),
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)
	_, err = s.service.Create(s.ctx, CreateParams{
		Type: model.PaymentTypeCourt, Amount: decimal.NewFromInt(-3),
	})
	s.Require().NoError(err)

	byType, _, err := s.service.List(s.ctx, model.PaymentFilter{Type: model.PaymentTypeCourt}, 0, 0)
	s.Require().NoError(err)
	s.Len(byType, 1)

	byPlayer, _, err := s.service.List(s.ctx, model.PaymentFilter{PlayerID: "p1"}, 0, 0)
	s.Require().NoError(err)
	s.Len(byPlayer, 1)

	bySearch, _, err := s.service.List(s.ctx, model.PaymentFilter{Search: "dues"}, 0, 0)
	s.Require().NoError(err)
	s.Len(bySearch, 1)

	// Only the two later payments fall inside the window
	from := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)
	byTime, _, err := s.service.List(s.ctx, model.PaymentFilter{From: from}, 0, 0)
	s.Require().NoError(err)
	s.Len(byTime, 2)
}

func (s *PaymentServiceSuite) TestListPagination() {
	s.seedPlayer("p1", "Asha", "Mushi")
	for i := 1; i <= 5; i++ {
		_, err := s.service.Create(s.ctx, CreateParams{
			Type: model.PaymentTypePlayer, PlayerID: "p1", Amount: decimal.NewFromInt(int64(i)),
		})
		s.Require().NoError(err)
	}

	page, total, err := s.service.List(s.ctx, model.PaymentFilter{}, 2, 2)
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page, 2)
	// Newest first: page 2 holds the 3rd and 2nd payments
	s.True(page[0].Amount.Equal(decimal.NewFromInt(3)))
	s.True(page[1].Amount.Equal(decimal.NewFromInt(2)))
}
