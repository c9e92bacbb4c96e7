package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentID uniquely identifies a payment record
type PaymentID string

// PaymentType classifies what a payment was for
type PaymentType string

const (
	// PaymentTypePlayer is a payment attributed to a specific player
	PaymentTypePlayer PaymentType = "player"
	// PaymentTypeCourt is a court hire charge not tied to a player
	PaymentTypeCourt PaymentType = "court"
	// PaymentTypeOthers covers miscellaneous club income and expenses
	PaymentTypeOthers PaymentType = "others"
)

// Valid reports whether t is a known payment type
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypePlayer, PaymentTypeCourt, PaymentTypeOthers:
		return true
	}
	return false
}

const (
	// DefaultCurrency is used when a payment does not specify one
	DefaultCurrency = "TZS"
	// MaxNotesLength bounds free-text notes on payments
	MaxNotesLength = 255
)

// Payment is a single ledger entry. A positive amount is a credit
// (increases the owning player's balance), a negative amount a debit.
type Payment struct {
	ID   PaymentID
	Type PaymentType

	// Set only when Type is PaymentTypePlayer. PlayerName and PlayerKiliID
	// are a snapshot of the player at payment-creation time and go stale
	// if the player is later renamed.
	PlayerID     PlayerID
	PlayerName   string
	PlayerKiliID string

	Amount   decimal.Decimal
	Currency string
	Notes    string

	Timestamp time.Time

	// Archived payments are excluded from balance computation and from
	// default listings, but are never physically deleted by archiving.
	Archived bool
}

// IsCredit reports whether the payment increases a balance
func (p *Payment) IsCredit() bool {
	return p.Amount.IsPositive()
}
