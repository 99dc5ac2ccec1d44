package telegram

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"siegestats/internal/application"
	"siegestats/internal/models"
)

func TestTruncate(t *testing.T) {
	if truncate("ok") != "ok" {
		t.Fatalf("short text changed")
	}
	got := truncateCaption(strings.Repeat("я", maxCaptionLength))
	if len(got) > maxCaptionLength || !utf8.ValidString(got) || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected caption truncation, len=%d", len(got))
	}
}

func TestErrorMessage(t *testing.T) {
	err := fmt.Errorf("run: %w", application.ErrNoRosterSelected)
	if errorMessage(err) != "No players selected." {
		t.Fatalf("unexpected message: %s", errorMessage(err))
	}
}

func TestFormatRoster(t *testing.T) {
	a := &application.Analysis{
		Overview: []models.OverviewRow{
			{Participant: "A", MatchesPlayed: 50, WinPct: 60, KDRatio: 1.3333},
			{Participant: "B", MatchesPlayed: 40, WinPct: 75, KDRatio: 2},
		},
	}
	want := "1. B: 75.0% WR, K/D 2.00 (40 matches)\n2. A: 60.0% WR, K/D 1.33 (50 matches)\n"
	if got := formatRoster(a); got != want {
		t.Fatalf("unexpected roster:\n%s", got)
	}
}

func TestFormatMapsAndSides(t *testing.T) {
	in := &application.Insights{
		BestMaps:  []models.MapTotals{{MapName: "Bank", MatchesPlayed: 20, WinPct: 75}},
		WorstMaps: []models.MapTotals{{MapName: "Villa", MatchesPlayed: 12, WinPct: 25}},
		Sides:     []models.SideTotals{{Side: models.SideDefender, MatchesPlayed: 30, WinPctSide: 60}},
	}
	maps := formatMaps(in, 10)
	if !strings.Contains(maps, "Best maps:\n  Bank: 75.0% WR") || !strings.Contains(maps, "Worst maps:\n  Villa: 25.0% WR") {
		t.Fatalf("unexpected maps:\n%s", maps)
	}
	if sides := formatSides(in); !strings.HasPrefix(sides, "Defender: 60.0% WR") {
		t.Fatalf("unexpected sides:\n%s", sides)
	}
	if formatSides(&application.Insights{}) != "No side data for this roster." {
		t.Fatalf("expected empty state")
	}
}

func TestJoinSections(t *testing.T) {
	if joinSections("a", "") != "a" || joinSections("a", "b") != "a\n\nb" {
		t.Fatalf("unexpected join")
	}
	w := formatWarnings([]application.Warning{{Participant: "C", Message: "maps.json not found, treated as empty"}})
	if w != "Warnings:\n- C: maps.json not found, treated as empty" {
		t.Fatalf("unexpected warnings: %q", w)
	}
}
