package application

import (
	"errors"

	"siegestats/internal/repository"
)

var (
	ErrNoRosterSelected    = errors.New("no players selected")
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrInvalidThreshold    = errors.New("thresholds must be at least 1")
	ErrSheetsNotConfigured = errors.New("google sheets service is not configured")
	ErrAINotConfigured     = errors.New("ai recommendations are not configured")

	// ErrPlayersDirMissing is fatal; the players directory has to be created.
	ErrPlayersDirMissing = repository.ErrPlayersDirMissing
)
