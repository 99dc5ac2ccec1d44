package discord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"siegestats/internal/application"
	"siegestats/internal/models"
	"siegestats/internal/report"
)

func getColorByWinRate(winRate float64) int {
	switch {
	case winRate >= winRateExcellent:
		return colorPurple
	case winRate >= winRateGood:
		return colorGreen
	case winRate < winRatePoor:
		return colorRed
	default:
		return colorGray
	}
}

func getMedalEmoji(position int) string {
	switch position {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return "▪️"
	}
}

// truncate keeps msg within limit bytes without splitting a rune.
func truncate(msg string, limit int) string {
	if len(msg) <= limit {
		return msg
	}
	cut := 0
	for i := range msg {
		if i > limit-truncationMargin {
			break
		}
		cut = i
	}
	return msg[:cut] + "..."
}

func truncateMessage(msg string) string {
	return truncate(msg, maxMessageLength)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, application.ErrPlayersDirMissing):
		return "The players directory is missing. Create it and add one folder per player."
	case errors.Is(err, application.ErrNoRosterSelected):
		return "No players selected."
	default:
		return "Error: " + err.Error()
	}
}

func formatRoster(a *application.Analysis) string {
	rows := append([]models.OverviewRow(nil), a.Overview...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].WinPct > rows[j].WinPct })

	var sb strings.Builder
	for idx, r := range rows {
		sb.WriteString(fmt.Sprintf("%s **%s** | WR: `%s` | K/D: `%s` (%d matches)\n",
			getMedalEmoji(idx), r.Participant, report.FormatPct(r.WinPct), report.FormatRatio(r.KDRatio), r.MatchesPlayed))
	}
	if t := a.TeamOverview; t != nil {
		sb.WriteString(fmt.Sprintf("\n**%s** | WR: `%s` | K/D: `%s` (%d matches)\n",
			t.Participant, report.FormatPct(t.WinPct), report.FormatRatio(t.KDRatio), t.MatchesPlayed))
	}
	if sb.Len() == 0 {
		return "No overview data for this roster."
	}
	return sb.String()
}

func formatMapList(maps []models.MapTotals) string {
	var sb strings.Builder
	for _, m := range maps {
		sb.WriteString(fmt.Sprintf("**%s** | WR: `%s` | K/D: `%s` (%d matches)\n",
			m.MapName, report.FormatPct(m.WinPct), report.FormatRatio(m.KDRatio), m.MatchesPlayed))
	}
	return sb.String()
}

func formatMaps(in *application.Insights, minMatches int) string {
	if len(in.BestMaps) == 0 {
		return fmt.Sprintf("No maps with at least %d matches.", minMatches)
	}
	return "__Best maps__\n" + formatMapList(in.BestMaps) + "\n__Worst maps__\n" + formatMapList(in.WorstMaps)
}

func formatSides(in *application.Insights) string {
	if len(in.Sides) == 0 {
		return "No side data for this roster."
	}
	var sb strings.Builder
	for _, s := range in.Sides {
		sb.WriteString(fmt.Sprintf("**%s** | WR: `%s` | K/D: `%s` (%d matches)\n",
			report.SideLabel(s.Side), report.FormatPct(s.WinPctSide), report.FormatRatio(s.KDRatio), s.MatchesPlayed))
	}
	if in.BestSide != nil && in.WorstSide != nil && in.BestSide.Side != in.WorstSide.Side {
		sb.WriteString(fmt.Sprintf("\nStronger on **%s**, weaker on **%s**.", report.SideLabel(in.BestSide.Side), report.SideLabel(in.WorstSide.Side)))
	}
	return sb.String()
}

func formatOperatorLine(op models.OperatorTotals) string {
	line := fmt.Sprintf("**%s** (%s) | WR: `%s` | K/D: `%s` (%d matches)",
		op.OperatorName, report.SideLabel(op.Side), report.FormatPct(op.WinPct), report.FormatRatio(op.KDRatio), op.MatchesPlayed)
	if kpm := report.FormatKillsPerMatch(op.KillsPerMatch); kpm != "" {
		line += " | " + kpm + " kills/match"
	}
	return line
}

func formatOperators(pi application.PlayerInsight, minMatches int) string {
	if pi.Operators.Empty() {
		return fmt.Sprintf("No operators with at least %d matches.", minMatches)
	}
	var sb strings.Builder
	if pi.TopOperator != nil {
		sb.WriteString("Top: " + formatOperatorLine(*pi.TopOperator) + "\n")
	}
	if pi.BottomOperator != nil {
		sb.WriteString("Bottom: " + formatOperatorLine(*pi.BottomOperator) + "\n")
	}
	if len(pi.BestPerSide) > 0 {
		sb.WriteString("\n__Best per side__\n")
		for _, op := range pi.BestPerSide {
			sb.WriteString(formatOperatorLine(op) + "\n")
		}
	}
	sb.WriteString("\n__Most played__\n")
	for idx, op := range pi.Operators.MostPlayed {
		if idx == maxListedOperators {
			break
		}
		sb.WriteString(formatOperatorLine(op) + "\n")
	}
	return sb.String()
}

func formatPlaystyles(pi application.PlayerInsight) string {
	if len(pi.Playstyles) == 0 {
		return "No playstyle data."
	}
	var sb strings.Builder
	for _, p := range pi.Playstyles {
		sb.WriteString(fmt.Sprintf("%s: `%s`\n", p.Name, report.FormatPct(p.UsagePercent)))
	}
	return sb.String()
}

func formatWarnings(ws []application.Warning) string {
	if len(ws) == 0 {
		return ""
	}
	var sb strings.Builder
	for idx, w := range ws {
		if idx == maxListedWarnings {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(ws)-maxListedWarnings))
			break
		}
		sb.WriteString("⚠️ " + w.String() + "\n")
	}
	return sb.String()
}
