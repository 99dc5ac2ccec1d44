package application

import (
	"context"

	"siegestats/internal/report"
	"siegestats/internal/repository"
	"siegestats/pkg/sheets"
)

type AIProvider interface {
	Recommend(ctx context.Context, summary string) (string, error)
}

type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type AnalysisService interface {
	Participants() ([]string, error)
	Defaults() Defaults
	DefaultRequest(roster []string) Request
	Reload()
	Run(ctx context.Context, req Request) (*Analysis, error)
}

type ReportService interface {
	Tables(a *Analysis) []report.Table
	PDF(ctx context.Context, a *Analysis, withRecommendations bool) ([]byte, error)
	Workbook(a *Analysis) ([]byte, error)
	SyncSheets(ctx context.Context, a *Analysis) (string, error)
	Recommendations(ctx context.Context, a *Analysis) (string, error)
}

type Options struct {
	Defaults      Defaults
	ReportTitle   string
	SpreadsheetID string
	OwnerEmail    string
}

type Service struct {
	Analysis AnalysisService
	Report   ReportService
}

// NewService wires the services. ai and sheetsClient may be nil, which
// disables recommendations and the Sheets sync.
func NewService(repos *repository.Repository, ai AIProvider, sheetsClient sheets.Client, opts Options, logger Logger) *Service {
	var sheetsService SheetsService
	if sheetsClient != nil {
		sheetsService = NewSheetsServiceImpl(sheetsClient, opts.SpreadsheetID, opts.OwnerEmail)
	}

	return &Service{
		Analysis: NewAnalysisServiceImpl(repos.Records, repos.Invalidate, opts.Defaults, logger),
		Report:   NewReportServiceImpl(ai, sheetsService, opts.ReportTitle, logger),
	}
}
