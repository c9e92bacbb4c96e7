package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/mocks"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage/memory"
	"github.com/kiliclub/clubdesk/internal/testutil"
)

type ExportServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	service *Service
	ctx     context.Context
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) SetupTest() {
	s.store = memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.store, bus.New(testutil.NopLogger()), clk, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ExportServiceSuite) seedPlayer(p model.Player) {
	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.store.SavePlayers(s.ctx, append(players, p)))
}

func (s *ExportServiceSuite) parseCSV(buf *bytes.Buffer) [][]string {
	records, err := csv.NewReader(buf).ReadAll()
	s.Require().NoError(err)
	return records
}

func (s *ExportServiceSuite) TestExportHeaderOnlyWhenEmpty() {
	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportPlayers(s.ctx, &buf))

	records := s.parseCSV(&buf)
	s.Require().Len(records, 1)
	s.Equal(Headers, records[0])
}

func (s *ExportServiceSuite) TestExportRow() {
	birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	s.seedPlayer(model.Player{
		ID:            "p1",
		KiliID:        "Kili-007",
		FirstName:     "Asha",
		LastName:      "Mushi",
		Email:         "asha@example.com",
		BirthDate:     &birth,
		ContactNumber: "712345678",
		CountryCode:   "+255",
		DuprID:        "DUPR-42",
		Role:          "Player",
		Notes:         "founding member",
		Balance:       decimal.NewFromInt(50000),
		IsActive:      true,
	})

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportPlayers(s.ctx, &buf))

	records := s.parseCSV(&buf)
	s.Require().Len(records, 2)
	s.Equal([]string{
		"Kili-007", "Asha", "Mushi", "asha@example.com", "1990-04-12",
		"+255 712345678", "DUPR-42", "Player", "50000", "Active", "founding member",
	}, records[1])
}

func (s *ExportServiceSuite) TestExportInactiveStatus() {
	s.seedPlayer(model.Player{ID: "p1", KiliID: "Kili-001", FirstName: "Asha", LastName: "Mushi"})

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportPlayers(s.ctx, &buf))

	records := s.parseCSV(&buf)
	s.Equal("Inactive", records[1][9])
}

func (s *ExportServiceSuite) TestTemplateMatchesImportLayout() {
	var buf bytes.Buffer
	s.Require().NoError(s.service.WriteTemplate(&buf))

	records := s.parseCSV(&buf)
	s.Require().Len(records, 2)
	s.Equal(Headers, records[0])
	s.Len(records[1], len(Headers))
}

func (s *ExportServiceSuite) TestImportFullRow() {
	csvData := strings.Join([]string{
		strings.Join(Headers, ","),
		"Kili-007,Asha,Mushi,asha@example.com,1990-04-12,+255 712345678,DUPR-42,Administrator,50000,Active,founding member",
	}, "\n") + "\n"

	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(csvData))
	s.Require().NoError(err)
	s.Equal(1, count)

	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)

	p := players[0]
	s.Equal("Kili-007", p.KiliID)
	s.Equal("Asha", p.FirstName)
	s.Equal("Mushi", p.LastName)
	s.Equal("+255", p.CountryCode)
	s.Equal("712345678", p.ContactNumber)
	s.Equal("Administrator", p.Role)
	s.True(p.IsActive)
	s.Require().NotNil(p.BirthDate)
	s.Equal("1990-04-12", p.BirthDate.Format("2006-01-02"))
	// No payments exist, so the sheet balance reconciles to zero
	s.True(p.Balance.IsZero())
}

func (s *ExportServiceSuite) TestImportDefaultsForMissingColumns() {
	csvData := "First Name,Last Name\nNeema,Temba\n"

	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(csvData))
	s.Require().NoError(err)
	s.Equal(1, count)

	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)

	p := players[0]
	s.Equal("Kili-001", p.KiliID) // assigned from the sequence
	s.Equal("Player", p.Role)
	s.Equal("+255", p.CountryCode)
	s.True(p.IsActive)
	s.True(p.Balance.IsZero())
	s.Nil(p.BirthDate)
}

func (s *ExportServiceSuite) TestImportInactiveStatus() {
	csvData := "First Name,Last Name,Status\nNeema,Temba,Inactive\n"

	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(csvData))
	s.Require().NoError(err)
	s.Equal(1, count)

	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.False(players[0].IsActive)
}

func (s *ExportServiceSuite) TestImportReconcilesAgainstLedger() {
	// A payment recorded before its player arrives via import
	s.Require().NoError(s.store.SavePayments(s.ctx, []model.Payment{
		{ID: "pay1", Type: model.PaymentTypePlayer, PlayerID: "will-not-match", Amount: decimal.NewFromInt(999)},
	}))

	csvData := "First Name,Last Name,Balance\nNeema,Temba,123456\n"
	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(csvData))
	s.Require().NoError(err)
	s.Equal(1, count)

	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	// Sheet balance is provisional; the ledger holds nothing for this player
	s.True(players[0].Balance.IsZero())
}

func (s *ExportServiceSuite) TestImportAppendsToExistingPlayers() {
	s.seedPlayer(model.Player{ID: "p1", KiliID: "Kili-001", FirstName: "Asha", LastName: "Mushi", IsActive: true})

	csvData := "First Name,Last Name\nNeema,Temba\n"
	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(csvData))
	s.Require().NoError(err)
	s.Equal(1, count)

	players, err := s.store.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Asha", players[0].FirstName)
	s.Equal("Neema", players[1].FirstName)
}

func (s *ExportServiceSuite) TestImportEmptyFileIsNoOp() {
	count, err := s.service.ImportPlayers(s.ctx, strings.NewReader(strings.Join(Headers, ",")+"\n"))
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *ExportServiceSuite) TestImportGarbageHeaderFails() {
	_, err := s.service.ImportPlayers(s.ctx, strings.NewReader(""))
	s.Error(err)
}

func (s *ExportServiceSuite) TestSplitContact() {
	cases := []struct {
		in          string
		wantCode    string
		wantNumber  string
		description string
	}{
		{"+255 712345678", "+255", "712345678", "code and number"},
		{"712345678", "+255", "712345678", "bare number gets default code"},
		{"", "+255", "", "empty"},
		{"+1 555 0100", "+1", "555 0100", "code with spaced number"},
	}
	for _, tc := range cases {
		code, number := splitContact(tc.in)
		s.Equal(tc.wantCode, code, tc.description)
		s.Equal(tc.wantNumber, number, tc.description)
	}
}
