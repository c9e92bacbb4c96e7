package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Payment:
		o.printPayment(v)
	case PaymentList:
		o.printPaymentList(v)
	case Location:
		o.printLocation(v)
	case LocationList:
		o.printLocationList(v)
	case Role:
		o.printRole(v)
	case RoleList:
		o.printRoleList(v)
	case ImportResult:
		fmt.Printf("Imported %d players\n", v.Imported)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// PlayerList response type
type PlayerList struct {
	Players  []Player `json:"players"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// Payment response type
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

// PaymentList response type
type PaymentList struct {
	Payments []Payment `json:"payments"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// CourtCharge response type
type CourtCharge struct {
	Duration string          `json:"duration"`
	Amount   decimal.Decimal `json:"amount"`
}

// PlayerLimit response type
type PlayerLimit struct {
	Courts     int `json:"courts"`
	MaxPlayers int `json:"max_players"`
}

// Location response type
type Location struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SessionFee   decimal.Decimal `json:"session_fee"`
	Currency     string          `json:"currency"`
	CourtCharges []CourtCharge   `json:"court_charges"`
	PlayerLimits []PlayerLimit   `json:"player_limits"`
}

// LocationList response type
type LocationList struct {
	Locations []Location `json:"locations"`
}

// Role response type
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	IsDefault   bool     `json:"is_default"`
}

// RoleList response type
type RoleList struct {
	Roles []Role `json:"roles"`
}

// ImportResult response type
type ImportResult struct {
	Imported int `json:"imported"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	status := "Inactive"
	if p.IsActive {
		status = "Active"
	}
	fmt.Printf("Player: %s %s (%s)\n", p.FirstName, p.LastName, p.KiliID)
	fmt.Printf("ID: %s\n", p.ID)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Balance: %s\n", p.Balance)
	if p.Email != "" {
		fmt.Printf("Email: %s\n", p.Email)
	}
	if p.ContactNumber != "" {
		fmt.Printf("Contact: %s %s\n", p.CountryCode, p.ContactNumber)
	}
	if p.BirthDate != "" {
		fmt.Printf("Birth Date: %s\n", p.BirthDate)
	}
	if p.DuprID != "" {
		fmt.Printf("DUPR ID: %s\n", p.DuprID)
	}
	if p.Role != "" {
		fmt.Printf("Role: %s\n", p.Role)
	}
	if p.Notes != "" {
		fmt.Printf("Notes: %s\n", p.Notes)
	}
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d of %d):\n", len(l.Players), l.Total)
	for _, p := range l.Players {
		status := ""
		if !p.IsActive {
			status = " [inactive]"
		}
		fmt.Printf("  %-10s %-25s balance %s%s\n", p.KiliID, p.FirstName+" "+p.LastName, p.Balance, status)
	}
	if l.Total > len(l.Players) {
		fmt.Printf("Page %d (page size %d)\n", l.Page, l.PageSize)
	}
}

func (o *Output) printPayment(p Payment) {
	fmt.Printf("Payment: %s\n", p.ID)
	fmt.Printf("Type: %s\n", p.Type)
	if p.PlayerName != "" {
		fmt.Printf("Player: %s (%s)\n", p.PlayerName, p.PlayerKiliID)
	}
	fmt.Printf("Amount: %s %s\n", p.Amount, p.Currency)
	fmt.Printf("Timestamp: %s\n", p.Timestamp.Format(time.RFC3339))
	if p.Archived {
		fmt.Println("Archived: yes")
	}
	if p.Notes != "" {
		fmt.Printf("Notes: %s\n", p.Notes)
	}
}

func (o *Output) printPaymentList(l PaymentList) {
	fmt.Printf("Payments (%d of %d):\n", len(l.Payments), l.Total)
	for _, p := range l.Payments {
		who := p.Type
		if p.PlayerName != "" {
			who = p.PlayerName
		}
		archived := ""
		if p.Archived {
			archived = " [archived]"
		}
		fmt.Printf("  %s  %-8s %-25s %s %s%s\n",
			p.Timestamp.Format("2006-01-02 15:04"), p.Type, who, p.Amount, p.Currency, archived)
	}
	if l.Total > len(l.Payments) {
		fmt.Printf("Page %d (page size %d)\n", l.Page, l.PageSize)
	}
}

func (o *Output) printLocation(l Location) {
	fmt.Printf("Location: %s (%s)\n", l.Name, l.ID)
	fmt.Printf("Session Fee: %s %s\n", l.SessionFee, l.Currency)
	if len(l.CourtCharges) > 0 {
		fmt.Println("Court Charges:")
		for _, c := range l.CourtCharges {
			fmt.Printf("  %-8s %s\n", c.Duration, c.Amount)
		}
	}
	if len(l.PlayerLimits) > 0 {
		fmt.Println("Player Limits:")
		for _, p := range l.PlayerLimits {
			courts := "courts"
			if p.Courts == 1 {
				courts = "court"
			}
			fmt.Printf("  %d %s: up to %d players\n", p.Courts, courts, p.MaxPlayers)
		}
	}
}

func (o *Output) printLocationList(l LocationList) {
	fmt.Printf("Locations (%d):\n", len(l.Locations))
	for _, loc := range l.Locations {
		fmt.Printf("  - %s (%s) session fee %s %s\n", loc.Name, loc.ID, loc.SessionFee, loc.Currency)
	}
}

func (o *Output) printRole(r Role) {
	defaultStr := ""
	if r.IsDefault {
		defaultStr = " [default]"
	}
	fmt.Printf("Role: %s (%s)%s\n", r.Name, r.ID, defaultStr)
	if r.Description != "" {
		fmt.Printf("Description: %s\n", r.Description)
	}
	if len(r.Permissions) > 0 {
		fmt.Printf("Permissions: %s\n", strings.Join(r.Permissions, ", "))
	}
}

func (o *Output) printRoleList(l RoleList) {
	fmt.Printf("Roles (%d):\n", len(l.Roles))
	for _, r := range l.Roles {
		defaultStr := ""
		if r.IsDefault {
			defaultStr = " [default]"
		}
		fmt.Printf("  - %s (%s)%s\n", r.Name, r.ID, defaultStr)
	}
}
