package request

import "github.com/shopspring/decimal"

// PlayerRequest is the request body for creating or updating a player
type PlayerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	BirthDate     string `json:"birth_date,omitempty"` // YYYY-MM-DD
	ContactNumber string `json:"contact_number"`
	CountryCode   string `json:"country_code"`
	DuprID        string `json:"dupr_id"`
	Role          string `json:"role"`
	Notes         string `json:"notes"`
}

// SetActiveRequest is the request body for toggling a player's status
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// CreatePaymentRequest is the request body for recording a payment
type CreatePaymentRequest struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"player_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Notes    string          `json:"notes"`
}

// UpdatePaymentRequest is the request body for editing a payment
type UpdatePaymentRequest struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"player_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

// SetArchivedRequest is the request body for archiving or restoring a payment
type SetArchivedRequest struct {
	Archived bool `json:"archived"`
}

// CourtCharge is one row of a location's hire price table
type CourtCharge struct {
	Duration string          `json:"duration"`
	Amount   decimal.Decimal `json:"amount"`
}

// PlayerLimit is one row of a location's courts-to-players table
type PlayerLimit struct {
	Courts     int `json:"courts"`
	MaxPlayers int `json:"max_players"`
}

// LocationRequest is the request body for creating or updating a location
type LocationRequest struct {
	Name         string          `json:"name"`
	SessionFee   decimal.Decimal `json:"session_fee"`
	Currency     string          `json:"currency,omitempty"`
	CourtCharges []CourtCharge   `json:"court_charges,omitempty"`
	PlayerLimits []PlayerLimit   `json:"player_limits,omitempty"`
}

// RoleRequest is the request body for creating or updating a role
type RoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions,omitempty"`
}
