package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"siegestats/internal/application"
	"siegestats/internal/models"
)

func TestGetColorByWinRate(t *testing.T) {
	cases := map[float64]int{
		75: colorPurple,
		60: colorPurple,
		55: colorGreen,
		45: colorGray,
		10: colorRed,
	}
	for wr, want := range cases {
		if got := getColorByWinRate(wr); got != want {
			t.Fatalf("getColorByWinRate(%v) = %x, want %x", wr, got, want)
		}
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	short := "hello"
	if truncateMessage(short) != short {
		t.Fatalf("short message changed")
	}

	long := strings.Repeat("ё", maxMessageLength)
	got := truncateMessage(long)
	if len(got) > maxMessageLength {
		t.Fatalf("message too long: %d", len(got))
	}
	if !utf8.ValidString(got) || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected truncation: %q", got[len(got)-10:])
	}
}

func TestErrorMessage(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", application.ErrPlayersDirMissing)
	if !strings.Contains(errorMessage(wrapped), "Create it") {
		t.Fatalf("unexpected message: %s", errorMessage(wrapped))
	}
	if errorMessage(errors.New("boom")) != "Error: boom" {
		t.Fatalf("unexpected generic message")
	}
}

func TestFormatRosterOrdersByWinRate(t *testing.T) {
	a := &application.Analysis{
		Overview: []models.OverviewRow{
			{Participant: "A", MatchesPlayed: 10, WinPct: 40},
			{Participant: "B", MatchesPlayed: 10, WinPct: 70},
		},
		TeamOverview: &models.OverviewRow{Participant: models.TeamLabel, MatchesPlayed: 20, WinPct: 55},
	}
	out := formatRoster(a)
	if strings.Index(out, "**B**") > strings.Index(out, "**A**") {
		t.Fatalf("expected B first: %s", out)
	}
	if !strings.Contains(out, "🥇 **B**") || !strings.Contains(out, "**Team**") {
		t.Fatalf("unexpected roster: %s", out)
	}
	if formatRoster(&application.Analysis{}) != "No overview data for this roster." {
		t.Fatalf("expected empty state")
	}
}

func TestFormatMaps(t *testing.T) {
	in := &application.Insights{
		BestMaps:  []models.MapTotals{{MapName: "Bank", MatchesPlayed: 20, WinPct: 75, KDRatio: 1.2}},
		WorstMaps: []models.MapTotals{{MapName: "Villa", MatchesPlayed: 12, WinPct: 25}},
	}
	out := formatMaps(in, 10)
	if !strings.Contains(out, "**Bank** | WR: `75.0%` | K/D: `1.20` (20 matches)") || !strings.Contains(out, "**Villa**") {
		t.Fatalf("unexpected maps: %s", out)
	}
	if formatMaps(&application.Insights{}, 10) != "No maps with at least 10 matches." {
		t.Fatalf("expected empty state")
	}
}

func TestFormatSides(t *testing.T) {
	att := models.SideTotals{Side: models.SideAttacker, MatchesPlayed: 100, WinPctSide: 55}
	def := models.SideTotals{Side: models.SideDefender, MatchesPlayed: 80, WinPctSide: 45}
	in := &application.Insights{Sides: []models.SideTotals{att, def}, BestSide: &att, WorstSide: &def}

	out := formatSides(in)
	if !strings.Contains(out, "**Attacker** | WR: `55.0%`") || !strings.Contains(out, "Stronger on **Attacker**, weaker on **Defender**") {
		t.Fatalf("unexpected sides: %s", out)
	}
}

func TestFormatOperators(t *testing.T) {
	kpm := 1.5
	ash := models.OperatorTotals{OperatorName: "Ash", Side: models.SideAttacker, MatchesPlayed: 100, WinPct: 65, KillsPerMatch: &kpm}
	pi := application.PlayerInsight{
		Participant: "A",
		Operators:   models.OperatorRankings{MostPlayed: []models.OperatorTotals{ash}},
		TopOperator: &ash,
		BestPerSide: []models.OperatorTotals{ash},
	}
	out := formatOperators(pi, 100)
	if !strings.Contains(out, "Top: **Ash** (Attacker) | WR: `65.0%`") || !strings.Contains(out, "1.50 kills/match") {
		t.Fatalf("unexpected operators: %s", out)
	}
	if formatOperators(application.PlayerInsight{}, 100) != "No operators with at least 100 matches." {
		t.Fatalf("expected empty state")
	}
}

func TestFormatWarningsLimit(t *testing.T) {
	var ws []application.Warning
	for i := 0; i < maxListedWarnings+2; i++ {
		ws = append(ws, application.Warning{Participant: fmt.Sprintf("P%d", i), Message: "maps.json is missing"})
	}
	out := formatWarnings(ws)
	if strings.Count(out, "⚠️") != maxListedWarnings || !strings.Contains(out, "and 2 more") {
		t.Fatalf("unexpected warnings: %s", out)
	}
	if formatWarnings(nil) != "" {
		t.Fatalf("expected no output without warnings")
	}
}
