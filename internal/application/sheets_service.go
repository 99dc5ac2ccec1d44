package application

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"siegestats/internal/report"
	"siegestats/pkg/sheets"
)

type SheetsService interface {
	EnsureSpreadsheet(ctx context.Context) (string, error)
	WriteTables(ctx context.Context, tables []report.Table) error
	GetSpreadsheetURL() string
}

type SheetsServiceImpl struct {
	client     sheets.Client
	ownerEmail string

	mu            sync.Mutex
	spreadsheetID string
}

// NewSheetsServiceImpl uses spreadsheetID when set and creates a new
// spreadsheet on first sync otherwise.
func NewSheetsServiceImpl(client sheets.Client, spreadsheetID, ownerEmail string) *SheetsServiceImpl {
	return &SheetsServiceImpl{
		client:        client,
		ownerEmail:    ownerEmail,
		spreadsheetID: spreadsheetID,
	}
}

func (s *SheetsServiceImpl) EnsureSpreadsheet(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.urlLocked(), nil
	}

	id, _, err := s.client.CreateSpreadsheet(ctx, defaultSheetTitle)
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}
	s.spreadsheetID = id

	if s.ownerEmail != "" {
		if err := s.client.AddPermission(ctx, id, s.ownerEmail, sheetsPermissionRole); err != nil {
			return "", fmt.Errorf("failed to add owner permission: %w", err)
		}
	}

	if err := s.client.MakePublic(ctx, id); err != nil {
		return "", fmt.Errorf("failed to make spreadsheet public: %w", err)
	}

	return s.urlLocked(), nil
}

// WriteTables replaces the content of one tab per table. Tabs are created in
// table order; their contents are written concurrently.
func (s *SheetsServiceImpl) WriteTables(ctx context.Context, tables []report.Table) error {
	s.mu.Lock()
	id := s.spreadsheetID
	s.mu.Unlock()
	if id == "" {
		return fmt.Errorf("spreadsheet not initialized, call EnsureSpreadsheet first")
	}

	for _, t := range tables {
		if err := s.client.EnsureSheet(ctx, id, t.Name); err != nil {
			return fmt.Errorf("failed to prepare tab %q: %w", t.Name, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sheetsWriteConcurrency)
	for _, t := range tables {
		t := t
		g.Go(func() error {
			if err := s.client.ClearRange(gctx, id, sheetRange(t.Name, defaultClearRange)); err != nil {
				return fmt.Errorf("failed to clear tab %q: %w", t.Name, err)
			}
			if err := s.client.UpdateValues(gctx, id, sheetRange(t.Name, defaultStartCell), t.Values()); err != nil {
				return fmt.Errorf("failed to update tab %q: %w", t.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *SheetsServiceImpl) GetSpreadsheetURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urlLocked()
}

func (s *SheetsServiceImpl) urlLocked() string {
	if s.spreadsheetID == "" {
		return ""
	}
	return fmt.Sprintf(spreadsheetURLFormat, s.spreadsheetID)
}

func sheetRange(tab, cells string) string {
	return fmt.Sprintf("'%s'!%s", tab, cells)
}
