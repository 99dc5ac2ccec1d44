package discord

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/bwmarrin/discordgo"

	"siegestats/internal/application"
	"siegestats/internal/report"
)

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if !b.channelAllowed(i.ChannelID) {
		b.respondMessage(s, i.Interaction, "Commands are disabled in this channel.", true)
		return
	}

	switch i.ApplicationCommandData().Name {
	case "roster":
		b.handleRoster(s, i.Interaction)
	case "maps":
		b.handleMaps(s, i.Interaction)
	case "sides":
		b.handleSides(s, i.Interaction)
	case "operators":
		b.handleOperators(s, i.Interaction)
	case "playstyle":
		b.handlePlaystyle(s, i.Interaction)
	case "report":
		b.handleReport(s, i.Interaction)
	case "export":
		b.ensureAdmin(s, i.Interaction, b.handleExport)
	case "sync_sheet":
		b.ensureAdmin(s, i.Interaction, b.handleSyncSheet)
	case "reload":
		b.ensureAdmin(s, i.Interaction, b.handleReload)
	}
}

func options(i *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		out[opt.Name] = opt
	}
	return out
}

func stringOption(i *discordgo.Interaction, name string) string {
	if opt, ok := options(i)[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func boolOption(i *discordgo.Interaction, name string) bool {
	if opt, ok := options(i)[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// analyze runs the pipeline with the configured thresholds. An empty roster
// means every player.
func (b *Bot) analyze(ctx context.Context, roster []string) (*application.Analysis, error) {
	if len(roster) == 0 {
		all, err := b.services.Analysis.Participants()
		if err != nil {
			return nil, err
		}
		roster = all
	}
	return b.services.Analysis.Run(ctx, b.services.Analysis.DefaultRequest(roster))
}

func (b *Bot) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(b.ctx, commandTimeout)
}

func (b *Bot) sendEmbed(s *discordgo.Session, i *discordgo.Interaction, embed *discordgo.MessageEmbed) {
	embed.Description = truncate(embed.Description, maxEmbedDescription)
	if embed.Footer == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footerText}
	}
	b.editResponse(s, i, &discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{embed}})
}

// teamCommand defers, runs the analysis for the players option and hands
// the result to render.
func (b *Bot) teamCommand(s *discordgo.Session, i *discordgo.Interaction, render func(*application.Analysis) *discordgo.MessageEmbed) {
	b.deferResponse(s, i)

	ctx, cancel := b.commandContext()
	defer cancel()

	a, err := b.analyze(ctx, application.ParseRoster(stringOption(i, optPlayers)))
	if err != nil {
		b.logger.Error("discord analysis failed", "error", err)
		b.editContent(s, i, errorMessage(err))
		return
	}

	embed := render(a)
	if w := formatWarnings(a.Warnings); w != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Warnings", Value: truncate(w, 1024)})
	}
	b.sendEmbed(s, i, embed)
}

func (b *Bot) handleRoster(s *discordgo.Session, i *discordgo.Interaction) {
	b.teamCommand(s, i, func(a *application.Analysis) *discordgo.MessageEmbed {
		color := colorGold
		if a.TeamOverview != nil {
			color = getColorByWinRate(a.TeamOverview.WinPct)
		}
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Roster overview (%d players)", len(a.Roster)),
			Description: formatRoster(a),
			Color:       color,
		}
	})
}

func (b *Bot) handleMaps(s *discordgo.Session, i *discordgo.Interaction) {
	b.teamCommand(s, i, func(a *application.Analysis) *discordgo.MessageEmbed {
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Maps (min %d matches)", a.MinMapMatches),
			Description: formatMaps(a.Insights(), a.MinMapMatches),
			Color:       colorBlue,
		}
	})
}

func (b *Bot) handleSides(s *discordgo.Session, i *discordgo.Interaction) {
	b.teamCommand(s, i, func(a *application.Analysis) *discordgo.MessageEmbed {
		in := a.Insights()
		color := colorGray
		if in.BestSide != nil {
			color = getColorByWinRate(in.BestSide.WinPctSide)
		}
		return &discordgo.MessageEmbed{
			Title:       "Attacker vs defender",
			Description: formatSides(in),
			Color:       color,
		}
	})
}

// playerCommand resolves the player option against the known participants
// before running a single-player analysis.
func (b *Bot) playerCommand(s *discordgo.Session, i *discordgo.Interaction, render func(*application.Analysis, application.PlayerInsight) *discordgo.MessageEmbed) {
	player := stringOption(i, optPlayer)

	all, err := b.services.Analysis.Participants()
	if err != nil {
		b.respondMessage(s, i, errorMessage(err), true)
		return
	}
	if !slices.Contains(all, player) {
		b.respondMessage(s, i, fmt.Sprintf("Unknown player %q.", player), true)
		return
	}

	b.deferResponse(s, i)

	ctx, cancel := b.commandContext()
	defer cancel()

	a, err := b.analyze(ctx, []string{player})
	if err != nil {
		b.logger.Error("discord analysis failed", "player", player, "error", err)
		b.editContent(s, i, errorMessage(err))
		return
	}
	pi, _ := a.Insights().Player(player)
	b.sendEmbed(s, i, render(a, pi))
}

func (b *Bot) handleOperators(s *discordgo.Session, i *discordgo.Interaction) {
	b.playerCommand(s, i, func(a *application.Analysis, pi application.PlayerInsight) *discordgo.MessageEmbed {
		color := colorGray
		if pi.Overview != nil {
			color = getColorByWinRate(pi.Overview.WinPct)
		}
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Operators: %s (min %d matches)", pi.Participant, a.MinOperatorMatches),
			Description: formatOperators(pi, a.MinOperatorMatches),
			Color:       color,
		}
	})
}

func (b *Bot) handlePlaystyle(s *discordgo.Session, i *discordgo.Interaction) {
	b.playerCommand(s, i, func(_ *application.Analysis, pi application.PlayerInsight) *discordgo.MessageEmbed {
		embed := &discordgo.MessageEmbed{
			Title:       "Playstyle: " + pi.Participant,
			Description: formatPlaystyles(pi),
			Color:       colorBlue,
		}
		if pi.BestPlaystyle != nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Main playstyle",
				Value: fmt.Sprintf("%s (%s)", pi.BestPlaystyle.Name, report.FormatPct(pi.BestPlaystyle.UsagePercent)),
			})
		}
		return embed
	})
}

func (b *Bot) handleReport(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := b.commandContext()
	defer cancel()

	a, err := b.analyze(ctx, application.ParseRoster(stringOption(i, optPlayers)))
	if err != nil {
		b.editContent(s, i, errorMessage(err))
		return
	}

	data, err := b.services.Report.PDF(ctx, a, boolOption(i, optAI))
	if err != nil {
		b.logger.Error("pdf report failed", "run_id", a.RunID, "error", err)
		b.editContent(s, i, errorMessage(err))
		return
	}

	content := truncateMessage(fmt.Sprintf("Report for %d players is ready.\n%s", len(a.Roster), formatWarnings(a.Warnings)))
	b.editResponse(s, i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{Name: report.PDFFileName, ContentType: report.PDFContentType, Reader: bytes.NewReader(data)},
		},
	})
}

func (b *Bot) handleExport(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := b.commandContext()
	defer cancel()

	a, err := b.analyze(ctx, application.ParseRoster(stringOption(i, optPlayers)))
	if err != nil {
		b.editContent(s, i, errorMessage(err))
		return
	}

	data, err := b.services.Report.Workbook(a)
	if err != nil {
		b.logger.Error("export failed", "run_id", a.RunID, "error", err)
		b.editContent(s, i, errorMessage(err))
		return
	}

	content := "Your export is ready!"
	b.editResponse(s, i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{Name: report.WorkbookFileName, ContentType: report.WorkbookContentType, Reader: bytes.NewReader(data)},
		},
	})
}

func (b *Bot) handleSyncSheet(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := b.commandContext()
	defer cancel()

	a, err := b.analyze(ctx, application.ParseRoster(stringOption(i, optPlayers)))
	if err != nil {
		b.editContent(s, i, errorMessage(err))
		return
	}

	url, err := b.services.Report.SyncSheets(ctx, a)
	if err != nil {
		b.logger.Error("sheet sync failed", "run_id", a.RunID, "error", err)
		b.editContent(s, i, "Sync failed: "+err.Error())
		return
	}
	b.editContent(s, i, fmt.Sprintf("Sheet updated!\nLink: %s", url))
}

func (b *Bot) handleReload(s *discordgo.Session, i *discordgo.Interaction) {
	b.services.Analysis.Reload()
	b.respondMessage(s, i, "Player files will be reread on the next command.", true)
}
