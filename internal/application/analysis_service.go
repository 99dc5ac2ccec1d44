package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"siegestats/internal/analysis"
	"siegestats/internal/models"
	"siegestats/internal/repository"
)

// Request selects a roster and the thresholds for one run.
type Request struct {
	Roster             []string
	MinOperatorMatches int
	MinMapMatches      int
	TopN               int
}

// Defaults are the configured thresholds used when a caller does not pick its own.
type Defaults struct {
	MinOperatorMatches int
	MinMapMatches      int
	TopN               int
}

type Warning struct {
	Participant string        `json:"participant"`
	Source      models.Source `json:"source"`
	Message     string        `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Participant, w.Message)
}

// Analysis holds the tables of one run. Every run builds fresh tables.
type Analysis struct {
	RunID              string    `json:"runId"`
	GeneratedAt        time.Time `json:"generatedAt"`
	Roster             []string  `json:"roster"`
	MinOperatorMatches int       `json:"minOperatorMatches"`
	MinMapMatches      int       `json:"minMapMatches"`
	TopN               int       `json:"topN"`

	Overview          []models.OverviewRow               `json:"overview"`
	TeamOverview      *models.OverviewRow                `json:"teamOverview,omitempty"`
	Playstyles        map[string][]models.PlaystyleEntry `json:"playstyles"`
	MapRows           []models.MapRow                    `json:"mapRows"`
	OperatorRows      []models.OperatorRow               `json:"operatorRows"`
	Maps              []models.MapTotals                 `json:"maps"`
	OperatorsByTeam   []models.OperatorTotals            `json:"operatorsByTeam"`
	OperatorsByPlayer []models.OperatorTotals            `json:"operatorsByPlayer"`
	Sides             []models.SideTotals                `json:"sides"`
	Warnings          []Warning                          `json:"warnings"`
}

type AnalysisServiceImpl struct {
	repo       repository.Records
	invalidate func()
	defaults   Defaults
	logger     Logger
	now        func() time.Time
}

// NewAnalysisServiceImpl builds the service over repo. invalidate clears the
// record cache on Reload and may be nil when repo does not cache.
func NewAnalysisServiceImpl(repo repository.Records, invalidate func(), defaults Defaults, logger Logger) *AnalysisServiceImpl {
	if defaults.TopN <= 0 {
		defaults.TopN = analysis.DefaultTopN
	}
	return &AnalysisServiceImpl{
		repo:       repo,
		invalidate: invalidate,
		defaults:   defaults,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *AnalysisServiceImpl) Participants() ([]string, error) {
	return s.repo.Participants()
}

func (s *AnalysisServiceImpl) Defaults() Defaults {
	return s.defaults
}

// Reload drops cached record files so the next run rereads them.
func (s *AnalysisServiceImpl) Reload() {
	if s.invalidate != nil {
		s.invalidate()
	}
	s.logger.Info("record cache cleared")
}

// DefaultRequest builds a request for roster with the configured thresholds.
func (s *AnalysisServiceImpl) DefaultRequest(roster []string) Request {
	return Request{
		Roster:             roster,
		MinOperatorMatches: s.defaults.MinOperatorMatches,
		MinMapMatches:      s.defaults.MinMapMatches,
		TopN:               s.defaults.TopN,
	}
}

// Run validates the request, then loads, extracts and aggregates every
// participant of the roster. Missing or unreadable sources become warnings;
// an empty roster, bad thresholds, an unknown player or a missing players
// directory fail before anything is loaded.
func (s *AnalysisServiceImpl) Run(ctx context.Context, req Request) (*Analysis, error) {
	roster := normalizeRoster(req.Roster)
	if len(roster) == 0 {
		return nil, ErrNoRosterSelected
	}
	if req.MinOperatorMatches < 1 || req.MinMapMatches < 1 {
		return nil, fmt.Errorf("%w: operators=%d maps=%d", ErrInvalidThreshold, req.MinOperatorMatches, req.MinMapMatches)
	}
	if err := s.checkRoster(roster); err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = s.defaults.TopN
	}

	a := &Analysis{
		RunID:              uuid.NewString(),
		GeneratedAt:        s.now().UTC(),
		Roster:             roster,
		MinOperatorMatches: req.MinOperatorMatches,
		MinMapMatches:      req.MinMapMatches,
		TopN:               topN,
		Overview:           []models.OverviewRow{},
		Playstyles:         make(map[string][]models.PlaystyleEntry, len(roster)),
		MapRows:            []models.MapRow{},
		OperatorRows:       []models.OperatorRow{},
		Warnings:           []Warning{},
	}

	for _, p := range roster {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.collect(a, p); err != nil {
			return nil, err
		}
	}

	a.Maps = analysis.AggregateMaps(a.MapRows)
	a.OperatorsByTeam = analysis.AggregateOperatorsByTeam(a.OperatorRows)
	a.OperatorsByPlayer = analysis.AggregateOperatorsByPlayer(a.OperatorRows)
	a.Sides = analysis.AggregateSides(a.OperatorsByTeam)
	if team, ok := analysis.AggregateOverview(a.Overview); ok {
		a.TeamOverview = &team
	}

	for _, w := range a.Warnings {
		s.logger.Warn("source warning", "run_id", a.RunID, "player", w.Participant, "source", w.Source, "message", w.Message)
	}
	s.logger.Info("analysis completed",
		"run_id", a.RunID,
		"players", len(roster),
		"maps", len(a.Maps),
		"operators", len(a.OperatorsByTeam),
		"warnings", len(a.Warnings),
	)
	return a, nil
}

// checkRoster rejects names that are not folders of the players directory.
func (s *AnalysisServiceImpl) checkRoster(roster []string) error {
	known, err := s.repo.Participants()
	if err != nil {
		return err
	}
	var unknown []string
	for _, p := range roster {
		if !slices.Contains(known, p) {
			unknown = append(unknown, p)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, strings.Join(unknown, ", "))
	}
	return nil
}

func (s *AnalysisServiceImpl) collect(a *Analysis, participant string) error {
	rec, err := s.repo.Load(participant)
	broken := make(map[models.Source]bool)
	if err != nil {
		if errors.Is(err, ErrPlayersDirMissing) {
			return err
		}
		srcErrs := sourceErrors(err)
		if rec == nil || len(srcErrs) == 0 {
			return fmt.Errorf("failed to load %s: %w", participant, err)
		}
		for _, se := range srcErrs {
			broken[se.Source] = true
			a.Warnings = append(a.Warnings, Warning{
				Participant: participant,
				Source:      se.Source,
				Message:     fmt.Sprintf(msgSourceBroken, se.Source.FileName(), se.Err),
			})
		}
	}
	if rec == nil {
		rec = &models.PlayerRecords{Participant: participant}
	}

	for _, src := range models.AllSources {
		if !rec.Has(src) && !broken[src] {
			a.Warnings = append(a.Warnings, Warning{
				Participant: participant,
				Source:      src,
				Message:     fmt.Sprintf(msgSourceMissing, src.FileName()),
			})
		}
	}

	if rec.Overview != nil {
		if row, ok := analysis.ExtractOverview(rec.Overview, participant); ok {
			a.Overview = append(a.Overview, row)
			a.Playstyles[participant] = analysis.ExtractPlaystyles(rec.Overview)
		} else {
			a.Warnings = append(a.Warnings, Warning{
				Participant: participant,
				Source:      models.SourceOverview,
				Message:     msgNoOverviewData,
			})
		}
	}

	a.MapRows = append(a.MapRows, analysis.ExtractMaps(rec.Maps, participant)...)
	a.OperatorRows = append(a.OperatorRows, analysis.ExtractOperators(rec.Operators, participant)...)
	return nil
}

func sourceErrors(err error) []*repository.SourceError {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	out := make([]*repository.SourceError, 0, len(errs))
	for _, e := range errs {
		var se *repository.SourceError
		if errors.As(e, &se) {
			out = append(out, se)
		}
	}
	return out
}
