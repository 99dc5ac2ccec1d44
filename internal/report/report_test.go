package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"siegestats/internal/models"
)

func ptr(v float64) *float64 { return &v }

func sampleInput() Input {
	team := models.OverviewRow{Participant: models.TeamLabel, MatchesPlayed: 100, MatchesWon: 55, MatchesLost: 45, WinPct: 55, Kills: 300, Deaths: 200, KDRatio: 1.5}
	return Input{
		RunID:              "run-1",
		GeneratedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Roster:             []string{"A", "B"},
		MinOperatorMatches: 10,
		MinMapMatches:      10,
		Overview: []models.OverviewRow{
			{Participant: "A", MatchesPlayed: 50, MatchesWon: 30, MatchesLost: 20, WinPct: 60, Kills: 200, Deaths: 150, KDRatio: 1.33},
		},
		TeamOverview: &team,
		Playstyles: map[string][]models.PlaystyleEntry{
			"A": {{Name: "Entry Fragger", UsagePercent: 40}, {Name: "Anchor", UsagePercent: 20}},
		},
		Maps: []models.MapTotals{
			{MapName: "Bank", MatchesPlayed: 20, MatchesWon: 15, WinPct: 75},
			{MapName: "Unknown", MatchesPlayed: 50, MatchesWon: 50, WinPct: 100},
			{MapName: "Villa", MatchesPlayed: 12, MatchesWon: 3, WinPct: 25},
		},
		Sides: []models.SideTotals{
			{Side: "attacker", MatchesPlayed: 60, MatchesWon: 30, WinPctSide: 50, Kills: 90, Deaths: 60, KDRatio: 1.5},
			{Side: "defender", MatchesPlayed: 40, MatchesWon: 30, WinPctSide: 75},
		},
		OperatorsByTeam: []models.OperatorTotals{
			{OperatorName: "Ash", Side: "attacker", MatchesPlayed: 30, MatchesWon: 20, WinPct: 66.67, KillsPerMatch: ptr(1.5)},
			{OperatorName: "unknown", Side: "attacker", MatchesPlayed: 30},
		},
		OperatorsByPlayer: []models.OperatorTotals{
			{Participant: "A", OperatorName: "Ash", Side: "attacker", MatchesPlayed: 30, MatchesWon: 20, WinPct: 66.67, KillsPerMatch: ptr(1.5)},
			{Participant: "A", OperatorName: "Mute", Side: "defender", MatchesPlayed: 12, MatchesWon: 3, WinPct: 25, KillsPerMatch: ptr(0.5)},
			{Participant: "A", OperatorName: "Unknown", Side: "defender", MatchesPlayed: 99},
		},
		Recommendations: "- keep Bank\n- practice Villa",
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, sampleInput()); err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderPDFEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	in := Input{Roster: []string{"A"}, MinOperatorMatches: 100, MinMapMatches: 10}
	if err := RenderPDF(&buf, in); err != nil {
		t.Fatalf("RenderPDF should degrade on empty input, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a document even without data")
	}
}

func TestTablesFilterUnknownNames(t *testing.T) {
	for _, table := range Tables(sampleInput()) {
		for _, row := range table.Rows {
			for _, cell := range row {
				if s, ok := cell.(string); ok && (s == "Unknown" || s == "unknown") {
					t.Fatalf("unknown label leaked into %s: %v", table.Name, row)
				}
			}
		}
	}
}

func TestTablesShape(t *testing.T) {
	tables := Tables(sampleInput())
	if len(tables) != 6 {
		t.Fatalf("expected 6 tables, got %d", len(tables))
	}
	for _, table := range tables {
		for _, row := range table.Rows {
			if len(row) != len(table.Header) {
				t.Fatalf("%s row width %d, header width %d", table.Name, len(row), len(table.Header))
			}
		}
	}

	overview := tables[0]
	last := overview.Rows[len(overview.Rows)-1]
	if last[0] != models.TeamLabel {
		t.Fatalf("expected team row last, got %v", last[0])
	}
	sides := tables[2]
	if sides.Rows[0][0] != "Attacker" {
		t.Fatalf("expected title-cased side label, got %v", sides.Rows[0][0])
	}
	if values := overview.Values(); values[0][0] != "Player" {
		t.Fatalf("expected header first, got %v", values[0])
	}
}

func TestSidesTableMostPlayedFirst(t *testing.T) {
	in := sampleInput()
	in.Sides = []models.SideTotals{
		{Side: "attacker", MatchesPlayed: 20, MatchesWon: 10},
		{Side: "defender", MatchesPlayed: 70, MatchesWon: 35},
		{Side: "unknown", MatchesPlayed: 90},
	}
	sides := sidesTable(in)
	if len(sides.Rows) != 2 {
		t.Fatalf("expected 2 side rows, got %d", len(sides.Rows))
	}
	if sides.Rows[0][0] != "Defender" || sides.Rows[1][0] != "Attacker" {
		t.Fatalf("unexpected side order: %v, %v", sides.Rows[0][0], sides.Rows[1][0])
	}
	if sides.Rows[0][3] != 35 {
		t.Fatalf("expected losses derived for defender, got %v", sides.Rows[0][3])
	}
}

func TestRenderWorkbook(t *testing.T) {
	data, err := RenderWorkbook(sampleInput())
	if err != nil {
		t.Fatalf("RenderWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetOverview, SheetMaps, SheetSides, SheetTeamOperators, SheetPlayerOperators, SheetPlaystyles}
	if len(sheets) != len(want) {
		t.Fatalf("got sheets %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("got sheets %v, want %v", sheets, want)
		}
	}

	rows, err := f.GetRows(SheetMaps)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "Bank" || rows[2][0] != "Villa" {
		t.Fatalf("unexpected maps sheet: %v", rows)
	}
}

func TestFormatKillsPerMatch(t *testing.T) {
	if got := FormatKillsPerMatch(nil); got != "" {
		t.Fatalf("expected blank, got %q", got)
	}
	if got := FormatKillsPerMatch(ptr(1.234)); got != "1.23" {
		t.Fatalf("unexpected format: %q", got)
	}
}
