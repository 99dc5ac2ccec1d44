package report

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"siegestats/internal/analysis"
	"siegestats/internal/models"
)

const (
	PDFFileName    = "r6_siege_report.pdf"
	PDFContentType = "application/pdf"

	WorkbookFileName    = "r6_siege_stats.xlsx"
	WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	DefaultTitle = "Rainbow Six Siege Team Report"
)

// Input is everything a rendered report needs. Tables are the unfiltered
// aggregates; renderers apply thresholds and name filters themselves.
type Input struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	Roster      []string

	MinOperatorMatches int
	MinMapMatches      int

	Overview          []models.OverviewRow
	TeamOverview      *models.OverviewRow
	Playstyles        map[string][]models.PlaystyleEntry
	Maps              []models.MapTotals
	Sides             []models.SideTotals
	OperatorsByTeam   []models.OperatorTotals
	OperatorsByPlayer []models.OperatorTotals

	Recommendations string
}

func (in Input) title() string {
	if in.Title == "" {
		return DefaultTitle
	}
	return in.Title
}

// SideLabel turns "attacker" into "Attacker". A Caser keeps state, so one is
// built per call.
func SideLabel(side string) string {
	return cases.Title(language.English).String(side)
}

func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func FormatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatKillsPerMatch renders an undefined value as a blank.
func FormatKillsPerMatch(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func knownMaps(maps []models.MapTotals) []models.MapTotals {
	out := make([]models.MapTotals, 0, len(maps))
	for _, m := range maps {
		if !analysis.IsUnknownName(m.MapName) {
			out = append(out, m)
		}
	}
	return out
}

func knownOperators(ops []models.OperatorTotals) []models.OperatorTotals {
	out := make([]models.OperatorTotals, 0, len(ops))
	for _, op := range ops {
		if !analysis.IsUnknownName(op.OperatorName) {
			out = append(out, op)
		}
	}
	return out
}

func knownSides(sides []models.SideTotals) []models.SideTotals {
	out := make([]models.SideTotals, 0, len(sides))
	for _, s := range sides {
		if !analysis.IsUnknownName(s.Side) {
			out = append(out, s)
		}
	}
	return out
}
