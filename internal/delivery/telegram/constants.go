package telegram

import "time"

const (
	updateTimeout    = 60
	commandTimeout   = 60 * time.Second
	maxMessageLength = 4096
	maxCaptionLength = 1024
	truncationMargin = 10

	helpText = "R6 Siege team stats\n\n" +
		"/roster [players] - Overview of the roster\n" +
		"/maps [players] - Best and worst maps\n" +
		"/sides [players] - Attacker vs defender\n" +
		"/report [players] - PDF team report\n\n" +
		"players is an optional comma separated list; every player is used by default."

	adminHelpText = "\n\nAdmin:\n/export [players] - Excel export"
)
