package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/model"
)

type ReconcilerSuite struct {
	suite.Suite
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) player(id model.PlayerID, balance int64) model.Player {
	return model.Player{
		ID:        id,
		KiliID:    "Kili-001",
		FirstName: "Asha",
		LastName:  "Mushi",
		Balance:   decimal.NewFromInt(balance),
		IsActive:  true,
	}
}

func (s *ReconcilerSuite) payment(player model.PlayerID, amount int64, archived bool) model.Payment {
	p := model.Payment{
		ID:        model.PaymentID("pay-" + string(player)),
		Type:      model.PaymentTypeOthers,
		Amount:    decimal.NewFromInt(amount),
		Currency:  model.DefaultCurrency,
		Timestamp: time.Now(),
		Archived:  archived,
	}
	if player != "" {
		p.Type = model.PaymentTypePlayer
		p.PlayerID = player
	}
	return p
}

func (s *ReconcilerSuite) TestSinglePaymentCreditsPlayer() {
	players := []model.Player{s.player("a", 0)}
	payments := []model.Payment{s.payment("a", 50000, false)}

	got := Reconcile(players, payments)

	s.Require().Len(got, 1)
	s.True(got[0].Balance.Equal(decimal.NewFromInt(50000)))
}

func (s *ReconcilerSuite) TestCourtPaymentAffectsNobody() {
	players := []model.Player{s.player("a", 0)}
	payments := []model.Payment{
		{
			ID:        "pay-court",
			Type:      model.PaymentTypeCourt,
			Amount:    decimal.NewFromInt(-20000),
			Currency:  model.DefaultCurrency,
			Timestamp: time.Now(),
		},
	}

	got := Reconcile(players, payments)

	s.True(got[0].Balance.IsZero())
}

func (s *ReconcilerSuite) TestArchivedPaymentExcluded() {
	players := []model.Player{s.player("a", 50000)}
	payments := []model.Payment{s.payment("a", 50000, true)}

	got := Reconcile(players, payments)
	s.True(got[0].Balance.IsZero())

	// Restoring the payment brings the amount back
	payments[0].Archived = false
	got = Reconcile(players, payments)
	s.True(got[0].Balance.Equal(decimal.NewFromInt(50000)))
}

func (s *ReconcilerSuite) TestDeletedPaymentRemovedFromBalance() {
	players := []model.Player{s.player("a", 50000)}

	got := Reconcile(players, nil)

	s.True(got[0].Balance.IsZero())
}

func (s *ReconcilerSuite) TestMixedCreditsAndDebits() {
	players := []model.Player{s.player("a", 0), s.player("b", 0)}
	payments := []model.Payment{
		s.payment("a", 50000, false),
		s.payment("a", -20000, false),
		s.payment("b", 10000, false),
	}

	got := Reconcile(players, payments)

	s.True(got[0].Balance.Equal(decimal.NewFromInt(30000)))
	s.True(got[1].Balance.Equal(decimal.NewFromInt(10000)))
}

func (s *ReconcilerSuite) TestOrphanedPaymentTolerated() {
	players := []model.Player{s.player("a", 0)}
	payments := []model.Payment{
		s.payment("a", 50000, false),
		s.payment("deleted-player", 99999, false),
	}

	got := Reconcile(players, payments)

	s.Require().Len(got, 1)
	s.True(got[0].Balance.Equal(decimal.NewFromInt(50000)))
}

func (s *ReconcilerSuite) TestIdempotent() {
	players := []model.Player{s.player("a", 0), s.player("b", 123)}
	payments := []model.Payment{
		s.payment("a", 50000, false),
		s.payment("b", -7500, false),
		s.payment("a", 2500, true),
	}

	once := Reconcile(players, payments)
	twice := Reconcile(once, payments)

	s.Require().Len(twice, len(once))
	for i := range once {
		s.True(once[i].Balance.Equal(twice[i].Balance))
	}
}

func (s *ReconcilerSuite) TestNonBalanceFieldsUntouched() {
	players := []model.Player{s.player("a", 0)}
	players[0].Notes = "left-handed"
	payments := []model.Payment{s.payment("a", 100, false)}

	got := Reconcile(players, payments)

	s.Equal("left-handed", got[0].Notes)
	s.Equal(players[0].KiliID, got[0].KiliID)
	s.Equal(players[0].ID, got[0].ID)
}

func (s *ReconcilerSuite) TestInputNotMutated() {
	players := []model.Player{s.player("a", 0)}
	payments := []model.Payment{s.payment("a", 100, false)}

	_ = Reconcile(players, payments)

	s.True(players[0].Balance.IsZero())
}

func (s *ReconcilerSuite) TestBalanceFor() {
	payments := []model.Payment{
		s.payment("a", 50000, false),
		s.payment("a", -10000, false),
		s.payment("a", 400, true),
		s.payment("b", 777, false),
	}

	s.True(BalanceFor(payments, "a").Equal(decimal.NewFromInt(40000)))
	s.True(BalanceFor(payments, "missing").IsZero())
}
