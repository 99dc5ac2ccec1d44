package application

import (
	"fmt"
	"strings"

	"siegestats/internal/models"
	"siegestats/internal/report"
)

// Summarize renders the ranked insights of an analysis as plain text.
func Summarize(a *Analysis) string {
	in := a.Insights()
	var sb strings.Builder

	fmt.Fprintf(&sb, "Roster: %s\n", strings.Join(a.Roster, ", "))
	fmt.Fprintf(&sb, "Thresholds: operators >= %d matches, maps >= %d matches\n", a.MinOperatorMatches, a.MinMapMatches)
	if t := a.TeamOverview; t != nil {
		fmt.Fprintf(&sb, "Team: %d matches, win %s, K/D %s\n", t.MatchesPlayed, report.FormatPct(t.WinPct), report.FormatRatio(t.KDRatio))
	}

	sb.WriteString("Best maps:\n")
	writeMaps(&sb, in.BestMaps)
	sb.WriteString("Worst maps:\n")
	writeMaps(&sb, in.WorstMaps)

	sb.WriteString("Sides:\n")
	for _, s := range in.Sides {
		fmt.Fprintf(&sb, "- %s: %d matches, win %s, K/D %s\n",
			report.SideLabel(s.Side), s.MatchesPlayed, report.FormatPct(s.WinPctSide), report.FormatRatio(s.KDRatio))
	}

	for _, p := range in.Players {
		fmt.Fprintf(&sb, "Player %s:\n", p.Participant)
		if p.Overview != nil {
			fmt.Fprintf(&sb, "- overall: %d matches, win %s, K/D %s\n",
				p.Overview.MatchesPlayed, report.FormatPct(p.Overview.WinPct), report.FormatRatio(p.Overview.KDRatio))
		}
		for _, op := range p.BestPerSide {
			fmt.Fprintf(&sb, "- best %s: %s, %d matches, win %s, kills/match %s\n",
				op.Side, op.OperatorName, op.MatchesPlayed, report.FormatPct(op.WinPct), report.FormatKillsPerMatch(op.KillsPerMatch))
		}
		if p.BottomOperator != nil {
			fmt.Fprintf(&sb, "- weakest: %s, %d matches, win %s\n",
				p.BottomOperator.OperatorName, p.BottomOperator.MatchesPlayed, report.FormatPct(p.BottomOperator.WinPct))
		}
		if p.BestPlaystyle != nil {
			fmt.Fprintf(&sb, "- main playstyle: %s (%s)\n", p.BestPlaystyle.Name, report.FormatPct(p.BestPlaystyle.UsagePercent))
		}
	}
	return sb.String()
}

func writeMaps(sb *strings.Builder, maps []models.MapTotals) {
	if len(maps) == 0 {
		sb.WriteString("- no map reached the threshold\n")
		return
	}
	for i, m := range maps {
		if i == summaryTopMaps {
			break
		}
		fmt.Fprintf(sb, "- %s: %d matches, win %s, K/D %s\n",
			m.MapName, m.MatchesPlayed, report.FormatPct(m.WinPct), report.FormatRatio(m.KDRatio))
	}
}
