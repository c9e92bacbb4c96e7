package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// KiliIDPrefix is the prefix for human-readable player display ids
const KiliIDPrefix = "Kili"

// Player represents a club member
type Player struct {
	ID            PlayerID
	KiliID        string // human-readable display id, e.g. "Kili-007"
	FirstName     string
	LastName      string
	Email         string
	BirthDate     *time.Time
	ContactNumber string
	CountryCode   string
	DuprID        string
	Role          string
	Notes         string
	// Balance is derived: the sum of amounts of all non-archived payments
	// referencing this player. Never edited directly; the ledger recomputes
	// it after every payment mutation.
	Balance   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// FormatKiliID renders a sequence number in the display id convention
func FormatKiliID(seq int) string {
	return fmt.Sprintf("%s-%03d", KiliIDPrefix, seq)
}
