package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"siegestats/internal/application"
	"siegestats/pkg/config"
)

type Bot struct {
	session  *discordgo.Session
	services *application.Service
	logger   application.Logger
	ctx      context.Context

	adminIDs         map[string]struct{}
	allowedChannelID string
	guildID          string
	commands         []*discordgo.ApplicationCommand
}

func NewBot(cfg *config.Config, services *application.Service, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	return &Bot{
		session:          s,
		services:         services,
		logger:           logger,
		ctx:              context.Background(),
		adminIDs:         admins,
		allowedChannelID: cfg.AllowedChannelID,
		guildID:          cfg.DiscordGuildID,
	}, nil
}

func (b *Bot) Name() string { return "discord" }

func (b *Bot) Init() error {
	b.addCommands(
		b.newRosterCommand(),
		b.newMapsCommand(),
		b.newSidesCommand(),
		b.newOperatorsCommand(),
		b.newPlaystyleCommand(),
		b.newReportCommand(),
		b.newExportCommand(),
		b.newSyncSheetCommand(),
		b.newReloadCommand(),
	)
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	b.ctx = ctx
	if err := b.session.Open(); err != nil {
		b.logger.Error("discord session open failed", "error", err)
		return
	}

	b.logger.Info("discord bot started, registering slash commands", "guild_id", b.guildID)

	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, b.commands)
	if err != nil {
		b.logger.Error("failed to register commands", "error", err)
		return
	}
	b.logger.Info("slash commands registered", "count", len(registered))
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.logger.Error("discord session close failed", "error", err)
	}
}
