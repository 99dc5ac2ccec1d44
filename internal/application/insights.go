package application

import (
	"siegestats/internal/analysis"
	"siegestats/internal/models"
)

type PlayerInsight struct {
	Participant    string                  `json:"participant"`
	Overview       *models.OverviewRow     `json:"overview,omitempty"`
	Operators      models.OperatorRankings `json:"operators"`
	TopOperator    *models.OperatorTotals  `json:"topOperator,omitempty"`
	BottomOperator *models.OperatorTotals  `json:"bottomOperator,omitempty"`
	BestPerSide    []models.OperatorTotals `json:"bestPerSide"`
	TopAttackers   []models.OperatorTotals `json:"topAttackers"`
	TopDefenders   []models.OperatorTotals `json:"topDefenders"`
	Playstyles     []models.PlaystyleEntry `json:"playstyles"`
	BestPlaystyle  *models.PlaystyleEntry  `json:"bestPlaystyle,omitempty"`
}

// Insights are the thresholded rankings derived from an Analysis.
type Insights struct {
	BestMaps      []models.MapTotals      `json:"bestMaps"`
	WorstMaps     []models.MapTotals      `json:"worstMaps"`
	TopPlayedMaps []models.MapTotals      `json:"topPlayedMaps"`
	Sides         []models.SideTotals     `json:"sides"`
	BestSide      *models.SideTotals      `json:"bestSide,omitempty"`
	WorstSide     *models.SideTotals      `json:"worstSide,omitempty"`
	TeamOperators models.OperatorRankings `json:"teamOperators"`
	Players       []PlayerInsight         `json:"players"`
}

func (a *Analysis) Insights() *Insights {
	in := &Insights{
		TopPlayedMaps: analysis.TopPlayedMaps(a.Maps, analysis.DefaultTopPlayedMaps),
		Sides:         analysis.SidePerformance(a.Sides),
		TeamOperators: analysis.RankOperators(a.OperatorsByTeam, a.MinOperatorMatches, a.TopN),
		Players:       make([]PlayerInsight, 0, len(a.Roster)),
	}
	in.BestMaps, in.WorstMaps = analysis.BestWorstMaps(a.Maps, a.MinMapMatches)
	if best, worst, ok := analysis.BestWorstSide(in.Sides); ok {
		in.BestSide, in.WorstSide = &best, &worst
	}

	for _, p := range a.Roster {
		in.Players = append(in.Players, a.playerInsight(p))
	}
	return in
}

// Player returns the insight block for one participant of the roster.
func (in *Insights) Player(participant string) (PlayerInsight, bool) {
	for _, p := range in.Players {
		if p.Participant == participant {
			return p, true
		}
	}
	return PlayerInsight{}, false
}

func (a *Analysis) playerInsight(p string) PlayerInsight {
	threshold := a.MinOperatorMatches
	ops := analysis.OperatorsOf(a.OperatorsByPlayer, p)

	pi := PlayerInsight{
		Participant:  p,
		Operators:    analysis.RankOperators(ops, threshold, a.TopN),
		BestPerSide:  analysis.BestOperatorPerSide(ops, p, threshold),
		TopAttackers: analysis.TopOperatorsBySide(ops, p, models.SideAttacker, threshold, analysis.DefaultSideTopN),
		TopDefenders: analysis.TopOperatorsBySide(ops, p, models.SideDefender, threshold, analysis.DefaultSideTopN),
		Playstyles:   a.Playstyles[p],
	}
	if pi.Playstyles == nil {
		pi.Playstyles = []models.PlaystyleEntry{}
	}

	for i := range a.Overview {
		if a.Overview[i].Participant == p {
			row := a.Overview[i]
			pi.Overview = &row
			break
		}
	}
	if top, bottom, ok := analysis.TopBottomOperator(ops, p, threshold); ok {
		pi.TopOperator, pi.BottomOperator = &top, &bottom
	}
	if style, ok := analysis.BestPlaystyle(pi.Playstyles); ok {
		pi.BestPlaystyle = &style
	}
	return pi
}
