package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"siegestats/internal/ai"
	"siegestats/internal/application"
	"siegestats/internal/delivery/discord"
	"siegestats/internal/delivery/telegram"
	"siegestats/internal/delivery/web"
	"siegestats/internal/repository"
	"siegestats/pkg/config"
	"siegestats/pkg/logger"
	service "siegestats/pkg/services"
	"siegestats/pkg/sheets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := repository.NewRepository(&cfg.Repo, repository.NewRecordCache())
	if players, err := repos.Participants(); err != nil {
		if errors.Is(err, application.ErrPlayersDirMissing) {
			log.Error("players directory is missing, create it and add one folder per player", "dir", cfg.Repo.PlayersDir)
		} else {
			log.Error("failed to list players", "error", err)
		}
	} else {
		log.Info("players found", "dir", cfg.Repo.PlayersDir, "count", len(players))
	}

	var recommender application.AIProvider
	if cfg.GeminiKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiKey)
		if err != nil {
			return fmt.Errorf("init gemini: %w", err)
		}
		defer gemini.Close()
		recommender = gemini
	} else {
		log.Info("GEMINI_KEY not set, ai recommendations disabled")
	}

	var sheetsClient sheets.Client
	if cfg.GoogleCredentialsFile != "" {
		client, err := sheets.NewGoogleSheetsClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return fmt.Errorf("init google sheets: %w", err)
		}
		sheetsClient = client
	} else {
		log.Info("GOOGLE_CREDENTIALS_FILE not set, sheets sync disabled")
	}

	services := application.NewService(repos, recommender, sheetsClient, application.Options{
		Defaults: application.Defaults{
			MinOperatorMatches: cfg.MinOperatorMatches,
			MinMapMatches:      cfg.MinMapMatches,
			TopN:               cfg.TopOperators,
		},
		ReportTitle:   cfg.ReportTitle,
		SpreadsheetID: cfg.SpreadsheetID,
		OwnerEmail:    cfg.GoogleOwnerEmail,
	}, log)

	manager := service.NewManager(log)
	manager.AddService(web.NewServer(web.Config{Addr: cfg.HTTPAddr, Mode: cfg.HTTPMode}, services, log))

	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(&cfg, services, log)
		if err != nil {
			return err
		}
		manager.AddService(bot)
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAdminIDs, services, log)
		if err != nil {
			return err
		}
		manager.AddService(bot)
	}

	return manager.Run(ctx)
}
