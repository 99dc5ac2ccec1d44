package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"siegestats/internal/application"
	"siegestats/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
}

type analysisResponse struct {
	Analysis *application.Analysis `json:"analysis"`
	Insights *application.Insights `json:"insights"`
}

func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, contentTypeJSON, data)
}

// errorStatus maps a pipeline error onto a status code and a user message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrNoRosterSelected),
		errors.Is(err, application.ErrInvalidThreshold),
		errors.Is(err, application.ErrUnknownPlayer):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, application.ErrPlayersDirMissing):
		return http.StatusInternalServerError, msgPlayersDirMissing
	case errors.Is(err, application.ErrSheetsNotConfigured),
		errors.Is(err, application.ErrAINotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	_ = c.Error(err)
	writeJSON(c, status, errorResponse{Error: msg})
}

func (s *Server) runAnalysis(c *gin.Context) (*application.Analysis, error) {
	req, err := s.parseRequest(c)
	if err != nil {
		return nil, err
	}
	a, err := s.analyze(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	c.Header(headerRunID, a.RunID)
	return a, nil
}

// analyze shares one pipeline run between concurrent identical requests.
func (s *Server) analyze(ctx context.Context, req application.Request) (*application.Analysis, error) {
	v, err, _ := s.runs.Do(requestKey(req), func() (any, error) {
		return s.services.Analysis.Run(context.WithoutCancel(ctx), req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*application.Analysis), nil
}

func requestKey(req application.Request) string {
	return fmt.Sprintf("%s|%d|%d|%d", strings.Join(req.Roster, ","), req.MinOperatorMatches, req.MinMapMatches, req.TopN)
}

func (s *Server) handlePlayers(c *gin.Context) {
	players, err := s.services.Analysis.Participants()
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"players": players})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	a, err := s.runAnalysis(c)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, analysisResponse{Analysis: a, Insights: a.Insights()})
}

func (s *Server) handlePDF(c *gin.Context) {
	a, err := s.runAnalysis(c)
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := s.services.Report.PDF(c.Request.Context(), a, c.Query(paramAI) == "1")
	if err != nil {
		writeError(c, err)
		return
	}
	attachment(c, report.PDFFileName, report.PDFContentType, data)
}

func (s *Server) handleWorkbook(c *gin.Context) {
	a, err := s.runAnalysis(c)
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := s.services.Report.Workbook(a)
	if err != nil {
		writeError(c, err)
		return
	}
	attachment(c, report.WorkbookFileName, report.WorkbookContentType, data)
}

func (s *Server) handleSheetsSync(c *gin.Context) {
	a, err := s.runAnalysis(c)
	if err != nil {
		writeError(c, err)
		return
	}
	url, err := s.services.Report.SyncSheets(c.Request.Context(), a)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"url": url, "runId": a.RunID})
}

func (s *Server) handleReload(c *gin.Context) {
	s.services.Analysis.Reload()
	writeJSON(c, http.StatusOK, gin.H{"status": "reloaded"})
}

func attachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
