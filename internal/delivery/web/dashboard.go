package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"siegestats/internal/application"
	"siegestats/internal/report"
)

const dashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"pct":   report.FormatPct,
	"ratio": report.FormatRatio,
	"kpm":   report.FormatKillsPerMatch,
	"side":  report.SideLabel,
}

var dashboardTabs = []struct {
	ID    string
	Label string
}{
	{tabOverview, "Overview"},
	{tabMaps, "Maps"},
	{tabSides, "Sides"},
	{tabOperators, "Operators"},
	{tabInsights, "Insights"},
}

type tabLink struct {
	Label  string
	URL    string
	Active bool
}

type dashboardView struct {
	Title       string
	Tab         string
	Tabs        []tabLink
	Players     []string
	Selected    map[string]bool
	MinOperator int
	MinMap      int
	Error       string

	Analysis *application.Analysis
	Insights *application.Insights
	Tables   map[string]report.Table
	Charts   dashboardCharts
}

func (s *Server) handleDashboard(c *gin.Context) {
	view := dashboardView{
		Title:    report.DefaultTitle,
		Tab:      currentTab(c.Query(paramTab)),
		Selected: map[string]bool{},
	}
	view.Tabs = tabLinks(c.Request.URL.Query(), view.Tab)

	defaults := s.services.Analysis.Defaults()
	view.MinOperator, view.MinMap = defaults.MinOperatorMatches, defaults.MinMapMatches

	players, err := s.services.Analysis.Participants()
	if err != nil {
		s.renderDashboardError(c, view, err)
		return
	}
	view.Players = players

	req, err := s.parseRequest(c)
	if err != nil {
		s.renderDashboardError(c, view, err)
		return
	}
	view.MinOperator, view.MinMap = req.MinOperatorMatches, req.MinMapMatches
	for _, p := range req.Roster {
		view.Selected[p] = true
	}

	a, err := s.analyze(c.Request.Context(), req)
	if err != nil {
		s.renderDashboardError(c, view, err)
		return
	}
	c.Header(headerRunID, a.RunID)

	view.Analysis = a
	view.Insights = a.Insights()
	view.Charts = buildCharts(view.Insights)
	view.Tables = make(map[string]report.Table)
	for _, t := range s.services.Report.Tables(a) {
		view.Tables[t.Name] = t
	}
	c.HTML(http.StatusOK, dashboardTemplate, view)
}

func (s *Server) renderDashboardError(c *gin.Context, view dashboardView, err error) {
	status, msg := errorStatus(err)
	_ = c.Error(err)
	view.Error = msg
	c.HTML(status, dashboardTemplate, view)
}

func currentTab(raw string) string {
	for _, t := range dashboardTabs {
		if t.ID == raw {
			return raw
		}
	}
	return tabOverview
}

// tabLinks keeps the roster and thresholds of the current query on every tab.
func tabLinks(query url.Values, active string) []tabLink {
	links := make([]tabLink, 0, len(dashboardTabs))
	for _, t := range dashboardTabs {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set(paramTab, t.ID)
		links = append(links, tabLink{
			Label:  t.Label,
			URL:    "/?" + q.Encode(),
			Active: t.ID == active,
		})
	}
	return links
}
