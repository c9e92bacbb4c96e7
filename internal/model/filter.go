package model

import (
	"strings"
	"time"
)

// StatusFilter selects players by their active flag
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// BalanceFilter selects players by the sign of their balance
type BalanceFilter string

const (
	BalanceAll      BalanceFilter = "all"
	BalancePositive BalanceFilter = "positive"
	BalanceNegative BalanceFilter = "negative"
	BalanceZero     BalanceFilter = "zero"
)

// PlayerFilter is a pure predicate over player fields. Zero value matches
// every player.
type PlayerFilter struct {
	Status  StatusFilter
	Balance BalanceFilter
	Search  string
}

// Match reports whether the player passes the filter
func (f PlayerFilter) Match(p *Player) bool {
	switch f.Status {
	case StatusActive:
		if !p.IsActive {
			return false
		}
	case StatusInactive:
		if p.IsActive {
			return false
		}
	}

	switch f.Balance {
	case BalancePositive:
		if !p.Balance.IsPositive() {
			return false
		}
	case BalanceNegative:
		if !p.Balance.IsNegative() {
			return false
		}
	case BalanceZero:
		if !p.Balance.IsZero() {
			return false
		}
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystacks := []string{p.FirstName, p.LastName, p.KiliID, p.Email, p.DuprID}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// PaymentFilter is a pure predicate over payment fields. Zero value matches
// every non-archived payment.
type PaymentFilter struct {
	Type            PaymentType // empty matches all types
	PlayerID        PlayerID    // empty matches all players
	IncludeArchived bool
	ArchivedOnly    bool
	Search          string
	From            time.Time // zero means unbounded
	To              time.Time
}

// Match reports whether the payment passes the filter
func (f PaymentFilter) Match(p *Payment) bool {
	if f.ArchivedOnly {
		if !p.Archived {
			return false
		}
	} else if p.Archived && !f.IncludeArchived {
		return false
	}

	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.PlayerID != "" && p.PlayerID != f.PlayerID {
		return false
	}
	if !f.From.IsZero() && p.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.Timestamp.After(f.To) {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystacks := []string{p.PlayerName, p.PlayerKiliID, p.Notes, string(p.ID), p.Amount.String()}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// FilterPlayers returns the players matching f, preserving order
func FilterPlayers(players []Player, f PlayerFilter) []Player {
	out := make([]Player, 0, len(players))
	for i := range players {
		if f.Match(&players[i]) {
			out = append(out, players[i])
		}
	}
	return out
}

// FilterPayments returns the payments matching f, preserving order
func FilterPayments(payments []Payment, f PaymentFilter) []Payment {
	out := make([]Payment, 0, len(payments))
	for i := range payments {
		if f.Match(&payments[i]) {
			out = append(out, payments[i])
		}
	}
	return out
}

// Paginate returns the 1-indexed page of the given size. Out-of-range
// requests clamp to valid bounds rather than erroring.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
