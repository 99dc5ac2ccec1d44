package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"siegestats/internal/application"
	"siegestats/internal/report"
	"siegestats/internal/repository"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

const (
	overviewJSON = `{"segments":[{"type":"overview","stats":{
		"matchesPlayed":{"value":50},"matchesWon":{"value":30},"kills":{"value":200},"deaths":{"value":150}}}]}`
	mapsJSON = `[
		{"metadata":{"mapName":"Bank"},"stats":{"matchesPlayed":{"value":20},"matchesWon":{"value":15}}},
		{"metadata":{"mapName":"Villa"},"stats":{"matchesPlayed":{"value":12},"matchesWon":{"value":3}}}]`
	operatorsJSON = `[
		{"metadata":{"operatorName":"Ash"},"attributes":{"side":"attacker"},"stats":{"matchesPlayed":{"value":40},"matchesWon":{"value":20},"kills":{"value":60}}},
		{"metadata":{"operatorName":"Jager"},"attributes":{"side":"defender"},"stats":{"matchesPlayed":{"value":30},"matchesWon":{"value":18},"kills":{"value":33}}}]`
)

func writePlayer(t *testing.T, base, player string) {
	t.Helper()
	dir := filepath.Join(base, player)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"overview.json":  overviewJSON,
		"maps.json":      mapsJSON,
		"operators.json": operatorsJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func newTestServer(t *testing.T, playersDir string) http.Handler {
	t.Helper()
	repos := repository.NewRepository(&repository.Config{PlayersDir: playersDir}, repository.NewRecordCache())
	services := application.NewService(repos, nil, nil, application.Options{
		Defaults: application.Defaults{MinOperatorMatches: 10, MinMapMatches: 10, TopN: 10},
	}, nopLogger{})

	srv := NewServer(Config{Addr: ":0", Mode: gin.TestMode}, services, nopLogger{})
	if err := srv.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return srv.Handler()
}

func fixtureServer(t *testing.T) http.Handler {
	t.Helper()
	base := t.TempDir()
	writePlayer(t, base, "A")
	writePlayer(t, base, "B")
	return newTestServer(t, base)
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealthz(t *testing.T) {
	w := do(fixtureServer(t), http.MethodGet, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPlayers(t *testing.T) {
	w := do(fixtureServer(t), http.MethodGet, "/api/players")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var body struct {
		Players []string `json:"players"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(body.Players, []string{"A", "B"}) {
		t.Fatalf("unexpected players: %v", body.Players)
	}
}

func TestAnalysisDefaultsToAllPlayers(t *testing.T) {
	w := do(fixtureServer(t), http.MethodGet, "/api/analysis")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get(headerRunID) == "" {
		t.Fatalf("expected run id header")
	}

	var body struct {
		Analysis struct {
			Roster []string `json:"roster"`
			Maps   []struct {
				MapName       string `json:"mapName"`
				MatchesPlayed int    `json:"matchesPlayed"`
			} `json:"maps"`
		} `json:"analysis"`
		Insights struct {
			BestMaps []struct {
				MapName string `json:"mapName"`
			} `json:"bestMaps"`
		} `json:"insights"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(body.Analysis.Roster, []string{"A", "B"}) {
		t.Fatalf("unexpected roster: %v", body.Analysis.Roster)
	}
	if len(body.Analysis.Maps) != 2 || body.Analysis.Maps[0].MatchesPlayed != 40 {
		t.Fatalf("unexpected maps: %+v", body.Analysis.Maps)
	}
	if len(body.Insights.BestMaps) == 0 || body.Insights.BestMaps[0].MapName != "Bank" {
		t.Fatalf("unexpected best maps: %+v", body.Insights.BestMaps)
	}
}

func TestAnalysisRejectsBadInput(t *testing.T) {
	h := fixtureServer(t)
	targets := []string{
		"/api/analysis?players=",
		"/api/analysis?players=,%20,",
		"/api/analysis?min_operator=abc",
		"/api/analysis?min_map=0",
		"/api/analysis?top=-1",
	}
	for _, target := range targets {
		w := do(h, http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestAnalysisRepeatedPlayers(t *testing.T) {
	h := fixtureServer(t)
	for _, target := range []string{
		"/api/analysis?players=A&players=B",
		"/api/analysis?players=A,B",
		"/api/analysis?players=A&players=B,A",
	} {
		w := do(h, http.MethodGet, target)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", target, w.Code)
		}
		var body struct {
			Analysis struct {
				Roster []string `json:"roster"`
			} `json:"analysis"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(body.Analysis.Roster, []string{"A", "B"}) {
			t.Fatalf("%s: unexpected roster %v", target, body.Analysis.Roster)
		}
	}
}

func TestAnalysisRejectsUnknownPlayers(t *testing.T) {
	base := t.TempDir()
	players := filepath.Join(base, "players")
	writePlayer(t, players, "A")
	writePlayer(t, filepath.Join(base, "outside"), "A")
	h := newTestServer(t, players)

	for _, target := range []string{
		"/api/analysis?players=Zed",
		"/api/analysis?players=A,Zed",
		"/api/analysis?players=../outside/A",
		"/api/report.pdf?players=../outside/A",
	} {
		w := do(h, http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
		}
		if !strings.Contains(w.Body.String(), application.ErrUnknownPlayer.Error()) {
			t.Fatalf("%s: unexpected body %s", target, w.Body.String())
		}
	}
}

func TestAnalysisMissingPlayersDir(t *testing.T) {
	h := newTestServer(t, filepath.Join(t.TempDir(), "players"))

	w := do(h, http.MethodGet, "/api/analysis?players=A")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "create it") {
		t.Fatalf("expected guidance in body: %s", w.Body.String())
	}
}

func TestReportDownloads(t *testing.T) {
	h := fixtureServer(t)

	w := do(h, http.MethodGet, "/api/report.pdf?players=A")
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status: %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != report.PDFContentType {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, report.PDFFileName) {
		t.Fatalf("unexpected disposition: %s", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a pdf")
	}

	w = do(h, http.MethodGet, "/api/report.xlsx?players=A,B")
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx status: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != report.WorkbookContentType {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, report.WorkbookFileName) {
		t.Fatalf("unexpected disposition: %s", cd)
	}
}

func TestSheetsSyncWithoutClient(t *testing.T) {
	w := do(fixtureServer(t), http.MethodPost, "/api/sheets/sync?players=A")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	h := fixtureServer(t)

	w := do(h, http.MethodGet, "/?tab=maps&players=A")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Bank", "Villa", `class="active">Maps`} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}

	w = do(h, http.MethodGet, "/?tab=insights")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Best maps") {
		t.Fatalf("unexpected insights tab: %d", w.Code)
	}

	w = do(h, http.MethodGet, "/?players=")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), application.ErrNoRosterSelected.Error()) {
		t.Fatalf("expected roster error in page")
	}
}

func TestReloadRereadsFiles(t *testing.T) {
	base := t.TempDir()
	writePlayer(t, base, "A")
	h := newTestServer(t, base)

	if w := do(h, http.MethodGet, "/api/analysis?players=A"); w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if err := os.Remove(filepath.Join(base, "A", "maps.json")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	w := do(h, http.MethodPost, "/api/reload")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	w = do(h, http.MethodGet, "/api/analysis?players=A")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var body struct {
		Analysis struct {
			Maps []json.RawMessage `json:"maps"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Analysis.Maps) != 0 {
		t.Fatalf("expected no maps after removing maps.json, got %d", len(body.Analysis.Maps))
	}
}

func TestDashboardFormSubmission(t *testing.T) {
	h := fixtureServer(t)

	w := do(h, http.MethodGet, "/?tab=overview&roster=1&players=A&players=B&min_operator=10&min_map=10")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`value="A" checked`, `value="B" checked`} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}

	w = do(h, http.MethodGet, "/?tab=overview&roster=1&min_operator=10&min_map=10")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with every box unticked, got %d", w.Code)
	}
	body = w.Body.String()
	if !strings.Contains(body, application.ErrNoRosterSelected.Error()) {
		t.Fatalf("expected roster error in page")
	}
	if strings.Contains(body, `checked`) {
		t.Fatalf("expected no ticked boxes")
	}
}

func TestDashboardOperatorsTab(t *testing.T) {
	w := do(fixtureServer(t), http.MethodGet, "/?tab=operators&players=A,B")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"<svg",
		"Most played",
		"Highest win %",
		"Highest kills per match",
		"Top attackers",
		"Top defenders",
		"<h2>B</h2>",
		"Jager",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("operators tab missing %q", want)
		}
	}

	w = do(fixtureServer(t), http.MethodGet, "/?tab=sides")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Sides: wins vs losses") {
		t.Fatalf("expected sides chart")
	}
}

func TestCurrentTab(t *testing.T) {
	if currentTab("sides") != tabSides || currentTab("bogus") != tabOverview || currentTab("") != tabOverview {
		t.Fatalf("unexpected tab selection")
	}
}

func TestRequestKeyDistinguishesThresholds(t *testing.T) {
	a := application.Request{Roster: []string{"A", "B"}, MinOperatorMatches: 100, MinMapMatches: 10, TopN: 10}
	b := a
	b.MinMapMatches = 5
	if requestKey(a) == requestKey(b) {
		t.Fatalf("expected different keys")
	}
	if requestKey(a) != requestKey(application.Request{Roster: []string{"A", "B"}, MinOperatorMatches: 100, MinMapMatches: 10, TopN: 10}) {
		t.Fatalf("expected equal keys for equal requests")
	}
}
