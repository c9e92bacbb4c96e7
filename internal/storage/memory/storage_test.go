package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestEmptyCollections() {
	players, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)

	payments, err := s.storage.LoadPayments(s.ctx)
	s.Require().NoError(err)
	s.Empty(payments)
}

func (s *StorageSuite) TestSaveReplacesWholeCollection() {
	first := []model.Player{
		{ID: "p1", KiliID: "Kili-001", FirstName: "Asha", IsActive: true},
		{ID: "p2", KiliID: "Kili-002", FirstName: "Juma", IsActive: true},
	}
	s.Require().NoError(s.storage.SavePlayers(s.ctx, first))

	second := []model.Player{
		{ID: "p3", KiliID: "Kili-003", FirstName: "Neema", IsActive: true},
	}
	s.Require().NoError(s.storage.SavePlayers(s.ctx, second))

	got, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.PlayerID("p3"), got[0].ID)
}

func (s *StorageSuite) TestPaymentRoundTrip() {
	payments := []model.Payment{
		{
			ID:           "pay1",
			Type:         model.PaymentTypePlayer,
			PlayerID:     "p1",
			PlayerName:   "Asha Mushi",
			PlayerKiliID: "Kili-001",
			Amount:       decimal.NewFromInt(50000),
			Currency:     model.DefaultCurrency,
			Notes:        "session fee",
			Timestamp:    time.Now(),
		},
	}
	s.Require().NoError(s.storage.SavePayments(s.ctx, payments))

	got, err := s.storage.LoadPayments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.True(got[0].Amount.Equal(decimal.NewFromInt(50000)))
	s.Equal("Asha Mushi", got[0].PlayerName)
}

func (s *StorageSuite) TestLoadedSliceIsIsolated() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{{ID: "p1", FirstName: "Asha"}}))

	got, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	got[0].FirstName = "mutated"

	again, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal("Asha", again[0].FirstName)
}

func (s *StorageSuite) TestLocationAndRoleRoundTrip() {
	now := time.Now()
	locations := []model.Location{
		{
			ID:           "loc1",
			Name:         "Main Court",
			SessionFee:   decimal.NewFromInt(25000),
			Currency:     model.DefaultCurrency,
			CourtCharges: model.DefaultCourtCharges(),
			PlayerLimits: model.DefaultPlayerLimits(),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	s.Require().NoError(s.storage.SaveLocations(s.ctx, locations))

	gotLocs, err := s.storage.LoadLocations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(gotLocs, 1)
	s.Len(gotLocs[0].CourtCharges, 12)

	roles := model.DefaultRoles(now)
	s.Require().NoError(s.storage.SaveRoles(s.ctx, roles))

	gotRoles, err := s.storage.LoadRoles(s.ctx)
	s.Require().NoError(err)
	s.Len(gotRoles, 2)
}

func (s *StorageSuite) TestKiliSequenceMonotonic() {
	first, err := s.storage.NextKiliSequence(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextKiliSequence(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, first)
	s.Equal(2, second)
}
