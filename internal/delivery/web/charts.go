package web

import (
	"siegestats/internal/application"
	"siegestats/internal/models"
	"siegestats/internal/report"
)

const (
	chartLabelWidth = 130
	chartPlotWidth  = 360
	chartTextWidth  = 90
	chartBarHeight  = 18
	chartBarGap     = 6
)

type chartItem struct {
	Label  string
	Wins   int
	Losses int
}

// chartBar is one stacked wins/losses row of a horizontal SVG chart.
type chartBar struct {
	Label     string
	Wins      int
	Losses    int
	Y         int
	TextY     int
	WinWidth  int
	LossX     int
	LossWidth int
	EndX      int
}

type barChart struct {
	Title     string
	Width     int
	Height    int
	BarHeight int
	PlotX     int
	Bars      []chartBar
}

// winLossChart scales every bar against the largest wins+losses total.
func winLossChart(title string, items []chartItem) barChart {
	ch := barChart{
		Title:     title,
		Width:     chartLabelWidth + chartPlotWidth + chartTextWidth,
		BarHeight: chartBarHeight,
		PlotX:     chartLabelWidth,
	}

	largest := 0
	for _, it := range items {
		largest = max(largest, it.Wins+it.Losses)
	}
	if largest == 0 {
		return ch
	}

	for i, it := range items {
		y := i * (chartBarHeight + chartBarGap)
		win := it.Wins * chartPlotWidth / largest
		loss := it.Losses * chartPlotWidth / largest
		ch.Bars = append(ch.Bars, chartBar{
			Label:     it.Label,
			Wins:      it.Wins,
			Losses:    it.Losses,
			Y:         y,
			TextY:     y + chartBarHeight - 4,
			WinWidth:  win,
			LossX:     chartLabelWidth + win,
			LossWidth: loss,
			EndX:      chartLabelWidth + win + loss + 6,
		})
	}
	ch.Height = len(ch.Bars)*(chartBarHeight+chartBarGap) - chartBarGap
	return ch
}

func mapsChart(maps []models.MapTotals) barChart {
	items := make([]chartItem, 0, len(maps))
	for _, m := range maps {
		items = append(items, chartItem{Label: m.MapName, Wins: m.MatchesWon, Losses: m.MatchesLost})
	}
	return winLossChart("Most played maps: wins vs losses", items)
}

func sidesChart(sides []models.SideTotals) barChart {
	items := make([]chartItem, 0, len(sides))
	for _, s := range sides {
		items = append(items, chartItem{Label: report.SideLabel(s.Side), Wins: s.MatchesWon, Losses: s.MatchesLost})
	}
	return winLossChart("Sides: wins vs losses", items)
}

func operatorsChart(title string, ops []models.OperatorTotals) barChart {
	items := make([]chartItem, 0, len(ops))
	for _, op := range ops {
		items = append(items, chartItem{Label: op.OperatorName, Wins: op.MatchesWon, Losses: op.MatchesLost})
	}
	return winLossChart(title, items)
}

// playerOperators is the Operators tab block of one participant.
type playerOperators struct {
	Participant  string
	Chart        barChart
	Rankings     models.OperatorRankings
	TopAttackers []models.OperatorTotals
	TopDefenders []models.OperatorTotals
}

type dashboardCharts struct {
	Maps    barChart
	Sides   barChart
	Team    barChart
	Players []playerOperators
}

func buildCharts(in *application.Insights) dashboardCharts {
	out := dashboardCharts{
		Maps:    mapsChart(in.TopPlayedMaps),
		Sides:   sidesChart(in.Sides),
		Team:    operatorsChart("Team operators: wins vs losses", in.TeamOperators.MostPlayed),
		Players: make([]playerOperators, 0, len(in.Players)),
	}
	for _, p := range in.Players {
		out.Players = append(out.Players, playerOperators{
			Participant:  p.Participant,
			Chart:        operatorsChart(p.Participant+": top operators, wins vs losses", p.Operators.MostPlayed),
			Rankings:     p.Operators,
			TopAttackers: p.TopAttackers,
			TopDefenders: p.TopDefenders,
		})
	}
	return out
}
