package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"siegestats/internal/application"
)

type Config struct {
	Addr string
	Mode string
}

// Server serves the dashboard, the JSON API and the report downloads.
type Server struct {
	cfg      Config
	services *application.Service
	logger   application.Logger

	router *gin.Engine
	srv    *http.Server
	runs   singleflight.Group
}

func NewServer(cfg Config, services *application.Service, logger application.Logger) *Server {
	return &Server{
		cfg:      cfg,
		services: services,
		logger:   logger,
	}
}

func (s *Server) Name() string { return "http" }

func (s *Server) Init() error {
	router, err := s.newRouter()
	if err != nil {
		return err
	}
	s.router = router
	s.srv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return nil
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server failed", "error", err)
	}
}

func (s *Server) Stop() {
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("http server shutdown", "error", err)
	}
}

// Handler exposes the router once Init has run.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) newRouter() (*gin.Engine, error) {
	if s.cfg.Mode != "" {
		gin.SetMode(s.cfg.Mode)
	}

	tmpl, err := template.New(dashboardTemplate).Funcs(templateFuncs).ParseFS(templatesFS, "templates/"+dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{pathHealth, pathWorkbook})))
	router.SetHTMLTemplate(tmpl)

	router.GET(pathHealth, func(c *gin.Context) {
		writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/", s.handleDashboard)

	api := router.Group("/api", cors.New(newCORSConfig()))
	api.GET("/players", s.handlePlayers)
	api.GET("/analysis", s.handleAnalysis)
	api.GET("/report.pdf", s.handlePDF)
	api.GET("/report.xlsx", s.handleWorkbook)
	api.POST("/sheets/sync", s.handleSheetsSync)
	api.POST("/reload", s.handleReload)

	return router, nil
}

func newCORSConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost}
	cfg.ExposeHeaders = []string{"Content-Disposition", headerRunID}
	return cfg
}

func requestLogger(logger application.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		if path == pathHealth && status < http.StatusBadRequest {
			return
		}
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(startedAt),
			"bytes", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http_request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http_request", fields...)
		default:
			logger.Debug("http_request", fields...)
		}
	}
}
