package web

import "time"

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 5 * time.Second

	pathHealth   = "/healthz"
	pathWorkbook = "/api/report.xlsx"

	headerRunID = "X-Run-ID"

	paramPlayers     = "players"
	paramRosterForm  = "roster"
	paramMinOperator = "min_operator"
	paramMinMap      = "min_map"
	paramTop         = "top"
	paramTab         = "tab"
	paramAI          = "ai"

	contentTypeJSON = "application/json; charset=utf-8"

	msgPlayersDirMissing = "players directory is missing: create it and add one folder per player"
)

const (
	tabOverview  = "overview"
	tabMaps      = "maps"
	tabSides     = "sides"
	tabOperators = "operators"
	tabInsights  = "insights"
)
