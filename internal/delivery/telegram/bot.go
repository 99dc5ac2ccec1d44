package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"siegestats/internal/application"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	services *application.Service
	logger   application.Logger
	adminIDs map[int64]struct{}
}

func NewBot(token string, adminIDs []int64, services *application.Service, logger application.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	admins := make(map[int64]struct{})
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	logger.Info("telegram bot authorized", "account", bot.Self.UserName)

	return &Bot{
		bot:      bot,
		services: services,
		logger:   logger,
		adminIDs: admins,
	}, nil
}

func (b *Bot) Name() string { return "telegram" }

func (b *Bot) Init() error { return nil }

// Run polls updates until ctx is done or Stop closes the channel.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) Stop() {
	b.bot.StopReceivingUpdates()
}
