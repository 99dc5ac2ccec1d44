package discord

import "time"

const (
	maxMessageLength    = 2000
	maxEmbedDescription = 4096
	truncationMargin    = 10
	maxListedOperators  = 5
	maxListedWarnings   = 5

	commandTimeout = 60 * time.Second

	// Win rate thresholds for color coding
	winRateExcellent = 60.0
	winRateGood      = 50.0
	winRatePoor      = 40.0

	// Embed colors
	colorGold   = 0xFFD700 // Report / roster
	colorGreen  = 0x2ECC71 // Good win rate
	colorPurple = 0x9B59B6 // Excellent win rate
	colorRed    = 0xE74C3C // Poor win rate
	colorGray   = 0x95A5A6 // Default/neutral
	colorBlue   = 0x3498DB // Info

	footerText = "R6 Siege team stats"

	optPlayers = "players"
	optPlayer  = "player"
	optAI      = "ai"

	msgNoRights = "You do not have permission to run this command."
)
