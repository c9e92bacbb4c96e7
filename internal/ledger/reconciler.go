// Package ledger maintains the derived-balance invariant: every player's
// balance equals the sum of amounts of the non-archived payments that
// reference them.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/kiliclub/clubdesk/internal/model"
)

// Reconcile returns a new player collection where every player's Balance
// equals the sum of amounts over non-archived payments with a matching
// PlayerID. All other fields are unchanged and order is preserved.
//
// Reconcile is a pure function of its inputs and is idempotent; callers are
// responsible for loading the collections, persisting the result and
// publishing change notifications. Payments referencing a player id with no
// live player contribute to no one's balance.
func Reconcile(players []model.Player, payments []model.Payment) []model.Player {
	totals := make(map[model.PlayerID]decimal.Decimal, len(players))
	for i := range payments {
		p := &payments[i]
		if p.Archived || p.PlayerID == "" {
			continue
		}
		totals[p.PlayerID] = totals[p.PlayerID].Add(p.Amount)
	}

	out := make([]model.Player, len(players))
	for i := range players {
		out[i] = players[i]
		out[i].Balance = totals[players[i].ID]
	}
	return out
}

// BalanceFor computes a single player's derived balance from the payment
// collection, using the same sum rule as Reconcile.
func BalanceFor(payments []model.Payment, id model.PlayerID) decimal.Decimal {
	var sum decimal.Decimal
	for i := range payments {
		p := &payments[i]
		if p.Archived || p.PlayerID != id {
			continue
		}
		sum = sum.Add(p.Amount)
	}
	return sum
}
