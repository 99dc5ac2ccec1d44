package config

import (
	"reflect"
	"testing"
)

func TestReadEnvConfigDefaults(t *testing.T) {
	var cfg Config
	if err := ReadEnvConfig(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MinOperatorMatches != 100 || cfg.MinMapMatches != 10 || cfg.TopOperators != 10 {
		t.Fatalf("unexpected thresholds: %+v", cfg)
	}
	if cfg.Repo.PlayersDir != "players" || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestReadEnvConfigOverrides(t *testing.T) {
	t.Setenv("PLAYERS_DIR", "/data/players")
	t.Setenv("MIN_OPERATOR_MATCHES", "25")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("ADMIN_USER_IDS", "1,2")
	t.Setenv("TELEGRAM_ADMIN_IDS", "10,20")

	var cfg Config
	if err := ReadEnvConfig(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Repo.PlayersDir != "/data/players" || cfg.MinOperatorMatches != 25 || cfg.Log.Format != "text" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AdminUserIDs, []string{"1", "2"}) {
		t.Fatalf("unexpected admin ids: %v", cfg.AdminUserIDs)
	}
	if !reflect.DeepEqual(cfg.TelegramAdminIDs, []int64{10, 20}) {
		t.Fatalf("unexpected telegram admin ids: %v", cfg.TelegramAdminIDs)
	}
}

func TestReadEnvConfigRejectsBadThreshold(t *testing.T) {
	t.Setenv("MIN_MAP_MATCHES", "0")

	var cfg Config
	if err := ReadEnvConfig(&cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}
