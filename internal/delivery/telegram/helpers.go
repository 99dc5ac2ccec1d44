package telegram

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"siegestats/internal/application"
	"siegestats/internal/models"
	"siegestats/internal/report"
)

func (b *Bot) isAdmin(id int64) bool {
	_, ok := b.adminIDs[id]
	return ok
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, truncate(text))
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("telegram send failed", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = truncateCaption(caption)
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Error("telegram document failed", "chat_id", chatID, "file", name, "error", err)
	}
}

func truncateTo(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := 0
	for i := range text {
		if i > limit-truncationMargin {
			break
		}
		cut = i
	}
	return text[:cut] + "..."
}

func truncate(text string) string {
	return truncateTo(text, maxMessageLength)
}

func truncateCaption(text string) string {
	return truncateTo(text, maxCaptionLength)
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

func statsLine(name string, winPct, kd float64, matches int) string {
	return fmt.Sprintf("%s: %s WR, K/D %s (%d matches)", name, report.FormatPct(winPct), report.FormatRatio(kd), matches)
}

func formatRoster(a *application.Analysis) string {
	rows := append([]models.OverviewRow(nil), a.Overview...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].WinPct > rows[j].WinPct })

	var sb strings.Builder
	for idx, r := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s\n", idx+1, statsLine(r.Participant, r.WinPct, r.KDRatio, r.MatchesPlayed)))
	}
	if t := a.TeamOverview; t != nil {
		sb.WriteString("\n" + statsLine(t.Participant, t.WinPct, t.KDRatio, t.MatchesPlayed) + "\n")
	}
	if sb.Len() == 0 {
		return "No overview data for this roster."
	}
	return sb.String()
}

func formatMaps(in *application.Insights, minMatches int) string {
	if len(in.BestMaps) == 0 {
		return fmt.Sprintf("No maps with at least %d matches.", minMatches)
	}
	var sb strings.Builder
	sb.WriteString("Best maps:\n")
	for _, m := range in.BestMaps {
		sb.WriteString("  " + statsLine(m.MapName, m.WinPct, m.KDRatio, m.MatchesPlayed) + "\n")
	}
	sb.WriteString("\nWorst maps:\n")
	for _, m := range in.WorstMaps {
		sb.WriteString("  " + statsLine(m.MapName, m.WinPct, m.KDRatio, m.MatchesPlayed) + "\n")
	}
	return sb.String()
}

func formatSides(in *application.Insights) string {
	if len(in.Sides) == 0 {
		return "No side data for this roster."
	}
	var sb strings.Builder
	for _, s := range in.Sides {
		sb.WriteString(statsLine(report.SideLabel(s.Side), s.WinPctSide, s.KDRatio, s.MatchesPlayed) + "\n")
	}
	return sb.String()
}

func formatWarnings(ws []application.Warning) string {
	if len(ws) == 0 {
		return ""
	}
	lines := make([]string, 0, len(ws)+1)
	lines = append(lines, "Warnings:")
	for _, w := range ws {
		lines = append(lines, "- "+w.String())
	}
	return strings.Join(lines, "\n")
}
