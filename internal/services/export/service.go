// Package export moves the player collection in and out of tabular CSV
// with the dashboard's fixed column layout.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/ledger"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Headers is the fixed column layout, shared by export, import and the
// import template.
var Headers = []string{
	"Kili ID",
	"First Name",
	"Last Name",
	"Email",
	"Birth Date",
	"Contact Number",
	"DUPR ID",
	"Role",
	"Balance",
	"Status",
	"Notes",
}

const (
	birthDateLayout    = "2006-01-02"
	defaultCountryCode = "+255"
)

// Service imports and exports players as CSV
type Service struct {
	storage storage.Storage
	bus     *bus.Bus
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates an export service
func New(storage storage.Storage, b *bus.Bus, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		clock:   clk,
		logger:  logger.With(slog.String("component", "export")),
	}
}

// ExportPlayers writes the full player collection as CSV
func (s *Service) ExportPlayers(ctx context.Context, w io.Writer) error {
	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}

	for i := range players {
		p := &players[i]

		birth := ""
		if p.BirthDate != nil {
			birth = p.BirthDate.Format(birthDateLayout)
		}
		status := "Inactive"
		if p.IsActive {
			status = "Active"
		}

		row := []string{
			p.KiliID,
			p.FirstName,
			p.LastName,
			p.Email,
			birth,
			strings.TrimSpace(p.CountryCode + " " + p.ContactNumber),
			p.DuprID,
			p.Role,
			p.Balance.String(),
			status,
			p.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTemplate writes an example CSV in the import layout
func (s *Service) WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	example := []string{
		"Kili-001", "Asha", "Mushi", "asha@example.com", "1990-04-12",
		"+255 712345678", "DUPR-42", "Player", "0", "Active", "",
	}
	if err := cw.Write(example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ImportPlayers parses CSV rows in the export layout and appends them to the
// player collection. Missing columns default (balance 0, role Player, status
// Active unless stated otherwise); balances are then reconciled against any
// existing payments referencing the imported players. Returns the number of
// players imported.
func (s *Service) ImportPlayers(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may omit trailing columns

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read header row: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	players, err := s.storage.LoadPlayers(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	imported := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		kiliID := field("Kili ID")
		if kiliID == "" {
			seq, err := s.storage.NextKiliSequence(ctx)
			if err != nil {
				return 0, err
			}
			kiliID = model.FormatKiliID(seq)
		}

		var birth *time.Time
		if raw := field("Birth Date"); raw != "" {
			if t, err := time.Parse(birthDateLayout, raw); err == nil {
				birth = &t
			}
		}

		countryCode, contact := splitContact(field("Contact Number"))

		balance := decimal.Zero
		if raw := field("Balance"); raw != "" {
			if d, err := decimal.NewFromString(raw); err == nil {
				balance = d
			}
		}

		role := field("Role")
		if role == "" {
			role = "Player"
		}

		players = append(players, model.Player{
			ID:            model.PlayerID(uuid.NewString()),
			KiliID:        kiliID,
			FirstName:     field("First Name"),
			LastName:      field("Last Name"),
			Email:         field("Email"),
			BirthDate:     birth,
			ContactNumber: contact,
			CountryCode:   countryCode,
			DuprID:        field("DUPR ID"),
			Role:          role,
			Notes:         field("Notes"),
			Balance:       balance,
			IsActive:      field("Status") != "Inactive",
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		imported++
	}

	if imported == 0 {
		return 0, nil
	}

	// Imported balances are provisional; the ledger is the source of truth
	payments, err := s.storage.LoadPayments(ctx)
	if err != nil {
		return 0, err
	}
	players = ledger.Reconcile(players, payments)

	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return 0, err
	}
	s.bus.Publish(model.TopicPlayers)

	s.logger.Info("players imported", slog.Int("count", imported))
	return imported, nil
}

// splitContact separates a "+255 712345678" style number into country code
// and local number. Numbers without a code get the default.
func splitContact(raw string) (countryCode, number string) {
	if raw == "" {
		return defaultCountryCode, ""
	}
	if strings.HasPrefix(raw, "+") {
		if i := strings.IndexByte(raw, ' '); i > 0 {
			return raw[:i], strings.TrimSpace(raw[i+1:])
		}
	}
	return defaultCountryCode, raw
}
