package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"siegestats/internal/application"
	"siegestats/internal/report"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	roster := application.ParseRoster(msg.CommandArguments())

	switch msg.Command() {
	case "start", "help":
		text := helpText
		if b.isAdmin(chatID) {
			text += adminHelpText
		}
		b.sendMessage(chatID, text)
	case "roster":
		b.withAnalysis(ctx, chatID, roster, func(a *application.Analysis) {
			b.sendMessage(chatID, joinSections(formatRoster(a), formatWarnings(a.Warnings)))
		})
	case "maps":
		b.withAnalysis(ctx, chatID, roster, func(a *application.Analysis) {
			b.sendMessage(chatID, formatMaps(a.Insights(), a.MinMapMatches))
		})
	case "sides":
		b.withAnalysis(ctx, chatID, roster, func(a *application.Analysis) {
			b.sendMessage(chatID, formatSides(a.Insights()))
		})
	case "report":
		b.withAnalysis(ctx, chatID, roster, func(a *application.Analysis) {
			data, err := b.services.Report.PDF(ctx, a, false)
			if err != nil {
				b.logger.Error("pdf report failed", "run_id", a.RunID, "error", err)
				b.sendMessage(chatID, errorMessage(err))
				return
			}
			b.sendDocument(chatID, report.PDFFileName, data, joinSections(fmt.Sprintf("Report for %d players", len(a.Roster)), formatWarnings(a.Warnings)))
		})
	case "export":
		if !b.isAdmin(chatID) {
			b.sendMessage(chatID, "This command is for admins only.")
			return
		}
		b.withAnalysis(ctx, chatID, roster, func(a *application.Analysis) {
			data, err := b.services.Report.Workbook(a)
			if err != nil {
				b.logger.Error("export failed", "run_id", a.RunID, "error", err)
				b.sendMessage(chatID, errorMessage(err))
				return
			}
			b.sendDocument(chatID, report.WorkbookFileName, data, "")
		})
	default:
		b.sendMessage(chatID, "Unknown command. Send /help for the list.")
	}
}

// withAnalysis runs the pipeline with the configured thresholds; an empty
// roster means every player.
func (b *Bot) withAnalysis(ctx context.Context, chatID int64, roster []string, fn func(*application.Analysis)) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if len(roster) == 0 {
		all, err := b.services.Analysis.Participants()
		if err != nil {
			b.sendMessage(chatID, errorMessage(err))
			return
		}
		roster = all
	}

	a, err := b.services.Analysis.Run(ctx, b.services.Analysis.DefaultRequest(roster))
	if err != nil {
		b.logger.Error("telegram analysis failed", "chat_id", chatID, "error", err)
		b.sendMessage(chatID, errorMessage(err))
		return
	}
	fn(a)
}

func joinSections(main, extra string) string {
	if extra == "" {
		return main
	}
	return main + "\n\n" + extra
}
