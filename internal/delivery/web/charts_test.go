package web

import (
	"testing"

	"siegestats/internal/models"
)

func TestWinLossChartScalesToLargestTotal(t *testing.T) {
	ch := winLossChart("maps", []chartItem{
		{Label: "Bank", Wins: 30, Losses: 10},
		{Label: "Villa", Wins: 5, Losses: 15},
	})
	if len(ch.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(ch.Bars))
	}
	bank, villa := ch.Bars[0], ch.Bars[1]
	if bank.WinWidth+bank.LossWidth != chartPlotWidth {
		t.Fatalf("largest bar should fill the plot, got %d", bank.WinWidth+bank.LossWidth)
	}
	if villa.WinWidth+villa.LossWidth != chartPlotWidth/2 {
		t.Fatalf("expected half width for Villa, got %d", villa.WinWidth+villa.LossWidth)
	}
	if villa.Y <= bank.Y || bank.LossX != chartLabelWidth+bank.WinWidth {
		t.Fatalf("unexpected layout: %+v %+v", bank, villa)
	}
	if ch.Height != 2*chartBarHeight+chartBarGap {
		t.Fatalf("unexpected height %d", ch.Height)
	}
}

func TestWinLossChartEmpty(t *testing.T) {
	if ch := winLossChart("empty", nil); len(ch.Bars) != 0 {
		t.Fatalf("expected no bars")
	}
	if ch := winLossChart("zero", []chartItem{{Label: "Bank"}}); len(ch.Bars) != 0 {
		t.Fatalf("expected no bars without matches")
	}
}

func TestSidesChartLabels(t *testing.T) {
	ch := sidesChart([]models.SideTotals{{Side: "defender", MatchesPlayed: 10, MatchesWon: 6, MatchesLost: 4}})
	if len(ch.Bars) != 1 || ch.Bars[0].Label != "Defender" || ch.Bars[0].Wins != 6 {
		t.Fatalf("unexpected bars: %+v", ch.Bars)
	}
}
