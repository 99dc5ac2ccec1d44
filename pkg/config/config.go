package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"siegestats/internal/repository"
	"siegestats/pkg/logger"
)

type Config struct {
	Repo repository.Config
	Log  logger.Config `envPrefix:"LOG_"`

	MinOperatorMatches int    `env:"MIN_OPERATOR_MATCHES" envDefault:"100"`
	MinMapMatches      int    `env:"MIN_MAP_MATCHES" envDefault:"10"`
	TopOperators       int    `env:"TOP_OPERATORS" envDefault:"10"`
	ReportTitle        string `env:"REPORT_TITLE" envDefault:"Rainbow Six Siege Team Report"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPMode string `env:"HTTP_MODE" envDefault:"release"`

	DiscordToken     string   `env:"DISCORD_TOKEN" envDefault:""`
	DiscordGuildID   string   `env:"DISCORD_GUILD_ID" envDefault:""`
	AllowedChannelID string   `env:"ALLOWED_CHANNEL_ID" envDefault:""`
	AdminUserIDs     []string `env:"ADMIN_USER_IDS" envSeparator:"," envDefault:""`

	TelegramToken    string  `env:"TELEGRAM_TOKEN" envDefault:""`
	TelegramAdminIDs []int64 `env:"TELEGRAM_ADMIN_IDS" envSeparator:"," envDefault:""`

	GeminiKey string `env:"GEMINI_KEY" envDefault:""`

	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:""`
	SpreadsheetID         string `env:"SPREADSHEET_ID" envDefault:""`
	GoogleOwnerEmail      string `env:"GOOGLE_OWNER_EMAIL" envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.MinOperatorMatches < 1 {
		return fmt.Errorf("MIN_OPERATOR_MATCHES must be at least 1, got %d", c.MinOperatorMatches)
	}
	if c.MinMapMatches < 1 {
		return fmt.Errorf("MIN_MAP_MATCHES must be at least 1, got %d", c.MinMapMatches)
	}
	if c.TopOperators < 1 {
		return fmt.Errorf("TOP_OPERATORS must be at least 1, got %d", c.TopOperators)
	}
	if c.Repo.PlayersDir == "" {
		return fmt.Errorf("PLAYERS_DIR must not be empty")
	}
	return nil
}
