package application

import "time"

const (
	// Google Sheets configuration
	defaultSheetTitle    = "R6 Siege Team Stats"
	defaultClearRange    = "A1:Z1000"
	defaultStartCell     = "A1"
	sheetsPermissionRole = "writer"
	spreadsheetURLFormat = "https://docs.google.com/spreadsheets/d/%s"

	sheetsWriteConcurrency = 3

	// AI recommendations
	recommendationTimeout = 45 * time.Second
	summaryTopMaps        = 3

	// Warning messages
	msgSourceMissing  = "%s not found, treated as empty"
	msgSourceBroken   = "%s could not be read: %v"
	msgNoOverviewData = "overview.json has no overview segment"
)
