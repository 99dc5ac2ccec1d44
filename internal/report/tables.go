package report

import (
	"siegestats/internal/analysis"
	"siegestats/internal/models"
)

const (
	SheetOverview        = "Overview"
	SheetMaps            = "Maps"
	SheetSides           = "Sides"
	SheetTeamOperators   = "Team Operators"
	SheetPlayerOperators = "Player Operators"
	SheetPlaystyles      = "Playstyles"
)

// Table is a header plus rows of plain cell values, shared by the workbook
// and the Sheets sync.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Values returns the header followed by the rows.
func (t Table) Values() [][]any {
	out := make([][]any, 0, len(t.Rows)+1)
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	out = append(out, header)
	return append(out, t.Rows...)
}

var (
	countHeader    = []string{"Matches", "Wins", "Losses", "Win %", "Kills", "Deaths", "K/D"}
	operatorHeader = append(append([]string{"Operator", "Side"}, countHeader...), "Kills/Match")
)

// Tables lists every aggregate as a table, in a fixed order.
func Tables(in Input) []Table {
	return []Table{
		overviewTable(in),
		mapsTable(in),
		sidesTable(in),
		teamOperatorsTable(in),
		playerOperatorsTable(in),
		playstylesTable(in),
	}
}

func countCells(played, won, lost int, winPct float64, kills, deaths int, kd float64) []any {
	return []any{played, won, lost, round2(winPct), kills, deaths, round2(kd)}
}

func overviewTable(in Input) Table {
	t := Table{Name: SheetOverview, Header: append([]string{"Player"}, countHeader...)}
	rows := in.Overview
	if in.TeamOverview != nil {
		rows = append(append([]models.OverviewRow(nil), rows...), *in.TeamOverview)
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, append([]any{r.Participant},
			countCells(r.MatchesPlayed, r.MatchesWon, r.MatchesLost, r.WinPct, r.Kills, r.Deaths, r.KDRatio)...))
	}
	return t
}

func mapsTable(in Input) Table {
	t := Table{Name: SheetMaps, Header: append([]string{"Map"}, countHeader...)}
	for _, m := range knownMaps(in.Maps) {
		t.Rows = append(t.Rows, append([]any{m.MapName},
			countCells(m.MatchesPlayed, m.MatchesWon, m.MatchesLost, m.WinPct, m.Kills, m.Deaths, m.KDRatio)...))
	}
	return t
}

// sidesTable lists sides most played first, the order the PDF uses.
func sidesTable(in Input) Table {
	t := Table{Name: SheetSides, Header: append([]string{"Side"}, countHeader...)}
	for _, s := range analysis.SidePerformance(knownSides(in.Sides)) {
		t.Rows = append(t.Rows, append([]any{SideLabel(s.Side)},
			countCells(s.MatchesPlayed, s.MatchesWon, s.MatchesLost, s.WinPctSide, s.Kills, s.Deaths, s.KDRatio)...))
	}
	return t
}

func operatorCells(op models.OperatorTotals) []any {
	cells := append([]any{op.OperatorName, SideLabel(op.Side)},
		countCells(op.MatchesPlayed, op.MatchesWon, op.MatchesLost, op.WinPct, op.Kills, op.Deaths, op.KDRatio)...)
	if op.KillsPerMatch == nil {
		return append(cells, "")
	}
	return append(cells, round2(*op.KillsPerMatch))
}

func teamOperatorsTable(in Input) Table {
	t := Table{Name: SheetTeamOperators, Header: operatorHeader}
	for _, op := range knownOperators(in.OperatorsByTeam) {
		t.Rows = append(t.Rows, operatorCells(op))
	}
	return t
}

func playerOperatorsTable(in Input) Table {
	t := Table{Name: SheetPlayerOperators, Header: append([]string{"Player"}, operatorHeader...)}
	for _, op := range knownOperators(in.OperatorsByPlayer) {
		t.Rows = append(t.Rows, append([]any{op.Participant}, operatorCells(op)...))
	}
	return t
}

func playstylesTable(in Input) Table {
	t := Table{Name: SheetPlaystyles, Header: []string{"Player", "Playstyle", "Usage %"}}
	for _, p := range in.Roster {
		for _, s := range in.Playstyles[p] {
			t.Rows = append(t.Rows, []any{p, s.Name, round2(s.UsagePercent)})
		}
	}
	return t
}
