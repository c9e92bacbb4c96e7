package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationID uniquely identifies a court location configuration
type LocationID string

// CourtCharge is the hire price for a booking duration (hours)
type CourtCharge struct {
	Duration string
	Amount   decimal.Decimal
}

// PlayerLimit caps how many players a number of courts can host
type PlayerLimit struct {
	Courts     int
	MaxPlayers int
}

// Location is a court/venue configuration from the settings pages
type Location struct {
	ID           LocationID
	Name         string
	SessionFee   decimal.Decimal
	Currency     string
	CourtCharges []CourtCharge
	PlayerLimits []PlayerLimit
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultCourtCharges returns the standard hire price table
func DefaultCourtCharges() []CourtCharge {
	durations := []string{"0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "4.5", "5", "5.5", "6"}
	charges := make([]CourtCharge, len(durations))
	for i, d := range durations {
		charges[i] = CourtCharge{
			Duration: d,
			Amount:   decimal.NewFromInt(int64(12500 * (i + 1))),
		}
	}
	return charges
}

// DefaultPlayerLimits returns the standard courts-to-players table
func DefaultPlayerLimits() []PlayerLimit {
	return []PlayerLimit{
		{Courts: 1, MaxPlayers: 6},
		{Courts: 2, MaxPlayers: 10},
		{Courts: 3, MaxPlayers: 14},
		{Courts: 4, MaxPlayers: 20},
		{Courts: 5, MaxPlayers: 24},
		{Courts: 6, MaxPlayers: 26},
	}
}
