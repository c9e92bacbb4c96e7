package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiliclub/clubdesk/internal/model"
)

// Player is the API representation of a player
type Player struct {
	ID            string          `json:"id"`
	KiliID        string          `json:"kili_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	BirthDate     string          `json:"birth_date,omitempty"`
	ContactNumber string          `json:"contact_number"`
	CountryCode   string          `json:"country_code"`
	DuprID        string          `json:"dupr_id"`
	Role          string          `json:"role"`
	Notes         string          `json:"notes"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PlayerFromModel converts a model player
func PlayerFromModel(p *model.Player) Player {
	birth := ""
	if p.BirthDate != nil {
		birth = p.BirthDate.Format("2006-01-02")
	}
	return Player{
		ID:            string(p.ID),
		KiliID:        p.KiliID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		BirthDate:     birth,
		ContactNumber: p.ContactNumber,
		CountryCode:   p.CountryCode,
		DuprID:        p.DuprID,
		Role:          p.Role,
		Notes:         p.Notes,
		Balance:       p.Balance,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PlayerList is a paginated player listing
type PlayerList struct {
	Players  []Player `json:"players"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// PlayerListFromModels converts a page of model players
func PlayerListFromModels(players []model.Player, total, page, pageSize int) PlayerList {
	out := PlayerList{
		Players:  make([]Player, 0, len(players)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range players {
		out.Players = append(out.Players, PlayerFromModel(&players[i]))
	}
	return out
}

// Payment is the API representation of a payment
type Payment struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	PlayerID     string          `json:"player_id,omitempty"`
	PlayerName   string          `json:"player_name,omitempty"`
	PlayerKiliID string          `json:"player_kili_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Notes        string          `json:"notes"`
	Timestamp    time.Time       `json:"timestamp"`
	Archived     bool            `json:"archived"`
}

// PaymentFromModel converts a model payment
func PaymentFromModel(p *model.Payment) Payment {
	return Payment{
		ID:           string(p.ID),
		Type:         string(p.Type),
		PlayerID:     string(p.PlayerID),
		PlayerName:   p.PlayerName,
		PlayerKiliID: p.PlayerKiliID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Notes:        p.Notes,
		Timestamp:    p.Timestamp,
		Archived:     p.Archived,
	}
}

// PaymentList is a paginated payment listing
type PaymentList struct {
	Payments []Payment `json:"payments"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// PaymentListFromModels converts a page of model payments
func PaymentListFromModels(payments []model.Payment, total, page, pageSize int) PaymentList {
	out := PaymentList{
		Payments: make([]Payment, 0, len(payments)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range payments {
		out.Payments = append(out.Payments, PaymentFromModel(&payments[i]))
	}
	return out
}

// CourtCharge mirrors one row of a location's hire price table
type CourtCharge struct {
	Duration string          `json:"duration"`
	Amount   decimal.Decimal `json:"amount"`
}

// PlayerLimit mirrors one row of a location's courts-to-players table
type PlayerLimit struct {
	Courts     int `json:"courts"`
	MaxPlayers int `json:"max_players"`
}

// Location is the API representation of a court location
type Location struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SessionFee   decimal.Decimal `json:"session_fee"`
	Currency     string          `json:"currency"`
	CourtCharges []CourtCharge   `json:"court_charges"`
	PlayerLimits []PlayerLimit   `json:"player_limits"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LocationFromModel converts a model location
func LocationFromModel(l *model.Location) Location {
	out := Location{
		ID:           string(l.ID),
		Name:         l.Name,
		SessionFee:   l.SessionFee,
		Currency:     l.Currency,
		CourtCharges: make([]CourtCharge, 0, len(l.CourtCharges)),
		PlayerLimits: make([]PlayerLimit, 0, len(l.PlayerLimits)),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	for _, c := range l.CourtCharges {
		out.CourtCharges = append(out.CourtCharges, CourtCharge{Duration: c.Duration, Amount: c.Amount})
	}
	for _, p := range l.PlayerLimits {
		out.PlayerLimits = append(out.PlayerLimits, PlayerLimit{Courts: p.Courts, MaxPlayers: p.MaxPlayers})
	}
	return out
}

// LocationList is a location listing
type LocationList struct {
	Locations []Location `json:"locations"`
}

// LocationListFromModels converts model locations
func LocationListFromModels(locations []model.Location) LocationList {
	out := LocationList{Locations: make([]Location, 0, len(locations))}
	for i := range locations {
		out.Locations = append(out.Locations, LocationFromModel(&locations[i]))
	}
	return out
}

// Role is the API representation of a role
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	IsDefault   bool      `json:"is_default"`
}

// RoleFromModel converts a model role
func RoleFromModel(r *model.Role) Role {
	return Role{
		ID:          string(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		IsDefault:   r.IsDefault,
	}
}

// RoleList is a role listing
type RoleList struct {
	Roles []Role `json:"roles"`
}

// RoleListFromModels converts model roles
func RoleListFromModels(roles []model.Role) RoleList {
	out := RoleList{Roles: make([]Role, 0, len(roles))}
	for i := range roles {
		out.Roles = append(out.Roles, RoleFromModel(&roles[i]))
	}
	return out
}

// ImportResult reports a CSV import
type ImportResult struct {
	Imported int `json:"imported"`
}
