package application

import (
	"bytes"
	"context"
	"fmt"

	"siegestats/internal/report"
)

type ReportServiceImpl struct {
	ai     AIProvider
	sheets SheetsService
	title  string
	logger Logger
}

func NewReportServiceImpl(ai AIProvider, sheets SheetsService, title string, logger Logger) *ReportServiceImpl {
	return &ReportServiceImpl{
		ai:     ai,
		sheets: sheets,
		title:  title,
		logger: logger,
	}
}

// Input maps an analysis onto the renderer input.
func (s *ReportServiceImpl) Input(a *Analysis) report.Input {
	return report.Input{
		Title:              s.title,
		RunID:              a.RunID,
		GeneratedAt:        a.GeneratedAt,
		Roster:             a.Roster,
		MinOperatorMatches: a.MinOperatorMatches,
		MinMapMatches:      a.MinMapMatches,
		Overview:           a.Overview,
		TeamOverview:       a.TeamOverview,
		Playstyles:         a.Playstyles,
		Maps:               a.Maps,
		Sides:              a.Sides,
		OperatorsByTeam:    a.OperatorsByTeam,
		OperatorsByPlayer:  a.OperatorsByPlayer,
	}
}

// PDF renders the team report. With withRecommendations set, AI commentary
// is appended when available; an AI failure only drops that section.
func (s *ReportServiceImpl) PDF(ctx context.Context, a *Analysis, withRecommendations bool) ([]byte, error) {
	in := s.Input(a)
	if withRecommendations && s.ai != nil {
		text, err := s.Recommendations(ctx, a)
		if err != nil {
			s.logger.Warn("recommendations skipped", "run_id", a.RunID, "error", err)
		} else {
			in.Recommendations = text
		}
	}

	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, in); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	s.logger.Info("pdf report rendered", "run_id", a.RunID, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (s *ReportServiceImpl) Tables(a *Analysis) []report.Table {
	return report.Tables(s.Input(a))
}

func (s *ReportServiceImpl) Workbook(a *Analysis) ([]byte, error) {
	data, err := report.RenderWorkbook(s.Input(a))
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	s.logger.Info("workbook rendered", "run_id", a.RunID, "bytes", len(data))
	return data, nil
}

// SyncSheets writes every table to its own tab and returns the spreadsheet URL.
func (s *ReportServiceImpl) SyncSheets(ctx context.Context, a *Analysis) (string, error) {
	if s.sheets == nil {
		return "", ErrSheetsNotConfigured
	}

	url, err := s.sheets.EnsureSpreadsheet(ctx)
	if err != nil {
		return "", err
	}
	if err := s.sheets.WriteTables(ctx, s.Tables(a)); err != nil {
		return "", err
	}
	s.logger.Info("google sheet synced", "run_id", a.RunID, "url", url)
	return url, nil
}

func (s *ReportServiceImpl) Recommendations(ctx context.Context, a *Analysis) (string, error) {
	if s.ai == nil {
		return "", ErrAINotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, recommendationTimeout)
	defer cancel()

	text, err := s.ai.Recommend(ctx, Summarize(a))
	if err != nil {
		return "", fmt.Errorf("ai recommendations: %w", err)
	}
	return text, nil
}
