package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatJSON = "json"
	FormatText = "text"

	logFileName = "siegestats.log"
)

type Config struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	Format     string `env:"FORMAT" envDefault:"json"`
	Dir        string `env:"DIR" envDefault:""`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"7"`
	Compress   bool   `env:"COMPRESS" envDefault:"true"`
}

type Logger struct {
	logger *slog.Logger
}

// NewLogger writes to stdout, and also to a rotated file when cfg.Dir is set.
func NewLogger(cfg *Config) (*Logger, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return New(os.Stdout, cfg), nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, fmt.Errorf("invalid log config: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	l := New(io.MultiWriter(os.Stdout, file), cfg)
	l.Info("file logging enabled", "path", file.Filename)
	return l, nil
}

// New builds a logger over w. Format "text" uses tint, anything else JSON.
func New(w io.Writer, cfg *Config) *Logger {
	level := getLoggerLevel(cfg.Level)

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stdout,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return &Logger{
		logger: slog.New(handler),
	}
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

func getLoggerLevel(logLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
