package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"siegestats/internal/analysis"
	"siegestats/internal/models"
)

const (
	pageMargin  = 36.0
	lineHeight  = 14.0
	fontFamily  = "Helvetica"
	chartWidth  = 440.0
	chartHeight = 240.0
	plotOffset  = 40.0
)

type point struct {
	x, y  float64
	label string
}

type pdfDoc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// RenderPDF writes the landscape A4 team report. Sections always appear in
// the same order; a section without data prints a single "no data" line.
func RenderPDF(w io.Writer, in Input) error {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(in.title(), true)
	pdf.SetCreator("siegestats", true)
	pdf.AliasNbPages("")

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-24)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	d.header(in)
	d.mapSummary(in)
	d.sideSummary(in)
	d.operatorHighlights(in)
	d.mapScatter(in)
	d.sideTable(in)
	d.overviewBlock(in)
	if strings.TrimSpace(in.Recommendations) != "" {
		d.recommendations(in.Recommendations)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (d *pdfDoc) header(in Input) {
	pdf := d.pdf
	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 24, d.tr(in.title()), "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(90, 90, 90)
	d.text(fmt.Sprintf("Roster: %s", strings.Join(in.Roster, ", ")))
	if !in.GeneratedAt.IsZero() {
		d.text(fmt.Sprintf("Generated: %s", in.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")))
	}
	d.text(fmt.Sprintf("Thresholds: operators >= %d matches, maps >= %d matches", in.MinOperatorMatches, in.MinMapMatches))
	if in.RunID != "" {
		d.text(fmt.Sprintf("Run: %s", in.RunID))
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)
}

func (d *pdfDoc) mapSummary(in Input) {
	d.heading("Team maps: best and worst")
	best, worst := analysis.BestWorstMaps(knownMaps(in.Maps), in.MinMapMatches)
	if len(best) == 0 {
		d.noData(fmt.Sprintf("No map reached %d matches.", in.MinMapMatches))
		return
	}
	d.labeled("Best map: ", mapText(best[0]))
	d.labeled("Worst map: ", mapText(worst[0]))
}

func (d *pdfDoc) sideSummary(in Input) {
	d.heading("Team sides: best and worst")
	best, worst, ok := analysis.BestWorstSide(analysis.SidePerformance(knownSides(in.Sides)))
	if !ok {
		d.noData("No side data available.")
		return
	}
	d.labeled("Best side: ", sideText(best))
	d.labeled("Worst side: ", sideText(worst))
}

func (d *pdfDoc) operatorHighlights(in Input) {
	ops := knownOperators(in.OperatorsByPlayer)
	for _, p := range in.Roster {
		d.heading(fmt.Sprintf("Operator highlights: %s", p))

		top, bottom, ok := analysis.TopBottomOperator(ops, p, in.MinOperatorMatches)
		if !ok {
			d.noData(fmt.Sprintf("No operator reached %d matches for this player.", in.MinOperatorMatches))
			continue
		}
		d.labeled("Top operator: ", operatorText(top))
		d.labeled("Worst operator: ", operatorText(bottom))

		eligible := analysis.FilterOperators(analysis.OperatorsOf(ops, p), in.MinOperatorMatches)
		points := make([]point, 0, len(eligible))
		for _, op := range eligible {
			points = append(points, point{x: float64(op.MatchesPlayed), y: op.WinPct, label: op.OperatorName})
		}
		d.scatter(fmt.Sprintf("Operator performance - %s", p), points)
	}
}

func (d *pdfDoc) mapScatter(in Input) {
	d.heading("Team map performance")
	maps := analysis.FilterMaps(knownMaps(in.Maps), in.MinMapMatches)
	if len(maps) == 0 {
		d.noData(fmt.Sprintf("No map reached %d matches.", in.MinMapMatches))
		return
	}
	points := make([]point, 0, len(maps))
	for _, m := range maps {
		points = append(points, point{x: float64(m.MatchesPlayed), y: m.WinPct, label: m.MapName})
	}
	d.scatter("Map performance - Team", points)
}

func (d *pdfDoc) sideTable(in Input) {
	d.heading("Side performance")
	sides := analysis.SidePerformance(knownSides(in.Sides))
	if len(sides) == 0 {
		d.noData("No side data available.")
		return
	}

	header := []string{"Side", "Matches", "Win %", "Kills", "Deaths", "K/D"}
	const colWidth, rowHeight = 80.0, 16.0

	pdf := d.pdf
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for _, h := range header {
		pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont(fontFamily, "", 9)
	for _, s := range sides {
		cells := []string{
			SideLabel(s.Side),
			fmt.Sprintf("%d", s.MatchesPlayed),
			FormatPct(s.WinPctSide),
			fmt.Sprintf("%d", s.Kills),
			fmt.Sprintf("%d", s.Deaths),
			FormatRatio(s.KDRatio),
		}
		for _, c := range cells {
			pdf.CellFormat(colWidth, rowHeight, d.tr(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.Ln(6)
}

func (d *pdfDoc) overviewBlock(in Input) {
	d.heading("Player overview")
	rows := make(map[string]models.OverviewRow, len(in.Overview))
	for _, r := range in.Overview {
		rows[r.Participant] = r
	}

	for _, p := range in.Roster {
		r, ok := rows[p]
		if !ok {
			d.noData(fmt.Sprintf("%s: no overview data available.", p))
			continue
		}
		text := overviewText(r)
		if style, ok := analysis.BestPlaystyle(in.Playstyles[p]); ok {
			text += fmt.Sprintf(", main playstyle: %s (%s)", style.Name, FormatPct(style.UsagePercent))
		}
		d.labeled(p+": ", text)
	}
	if in.TeamOverview != nil {
		d.labeled(in.TeamOverview.Participant+": ", overviewText(*in.TeamOverview))
	}
}

func (d *pdfDoc) recommendations(text string) {
	d.heading("Recommendations")
	d.pdf.SetFont(fontFamily, "", 10)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		d.text(line)
	}
}

func (d *pdfDoc) heading(text string) {
	d.ensureSpace(60)
	d.pdf.Ln(4)
	d.pdf.SetFont(fontFamily, "B", 13)
	d.pdf.CellFormat(0, 18, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetFont(fontFamily, "", 10)
}

func (d *pdfDoc) text(s string) {
	d.pdf.MultiCell(0, lineHeight, d.tr(s), "", "L", false)
}

func (d *pdfDoc) labeled(label, s string) {
	pdf := d.pdf
	pdf.SetFont(fontFamily, "B", 10)
	pdf.Write(lineHeight, d.tr(label))
	pdf.SetFont(fontFamily, "", 10)
	pdf.Write(lineHeight, d.tr(s))
	pdf.Ln(lineHeight)
}

func (d *pdfDoc) noData(s string) {
	d.pdf.SetFont(fontFamily, "I", 10)
	d.text(s)
	d.pdf.SetFont(fontFamily, "", 10)
}

func (d *pdfDoc) ensureSpace(h float64) {
	_, pageHeight := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageHeight-pageMargin {
		d.pdf.AddPage()
	}
}

// scatter draws matches played (x) against win rate (y, 0-100).
func (d *pdfDoc) scatter(title string, points []point) {
	d.ensureSpace(chartHeight + 10)
	pdf := d.pdf
	left, _, _, _ := pdf.GetMargins()
	startY := pdf.GetY()

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetXY(left, startY)
	pdf.CellFormat(chartWidth+plotOffset, 14, d.tr(title), "", 1, "C", false, 0, "")

	px, py := left+plotOffset, startY+22
	pw, ph := chartWidth, chartHeight-60

	maxX := 0.0
	for _, p := range points {
		maxX = math.Max(maxX, p.x)
	}
	maxX = niceCeil(maxX)

	pdf.SetFont(fontFamily, "", 7)
	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(225, 225, 225)
	for i := 0; i <= 4; i++ {
		yy := py + ph - float64(i)*ph/4
		pdf.Line(px, yy, px+pw, yy)
		pdf.Text(px-24, yy+2.5, fmt.Sprintf("%d%%", i*25))

		xx := px + float64(i)*pw/4
		pdf.Line(xx, py, xx, py+ph)
		pdf.Text(xx-6, py+ph+10, fmt.Sprintf("%.0f", maxX*float64(i)/4))
	}

	pdf.SetDrawColor(80, 80, 80)
	pdf.Rect(px, py, pw, ph, "D")
	pdf.Text(px+pw/2-24, py+ph+22, "Matches played")
	pdf.Text(left, py-6, "Win %")

	pdf.SetFillColor(31, 119, 180)
	pdf.SetFont(fontFamily, "", 6)
	for _, p := range points {
		cx := px + p.x/maxX*pw
		cy := py + ph - math.Min(math.Max(p.y, 0), 100)/100*ph
		pdf.Circle(cx, cy, 3, "F")
		pdf.Text(cx+4, cy-3, d.tr(p.label))
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetXY(left, py+ph+30)
}

// niceCeil rounds v up to a round axis limit.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}

func mapText(m models.MapTotals) string {
	return fmt.Sprintf("%s (matches: %d, win: %s, K/D: %s)",
		m.MapName, m.MatchesPlayed, FormatPct(m.WinPct), FormatRatio(m.KDRatio))
}

func sideText(s models.SideTotals) string {
	return fmt.Sprintf("%s (matches: %d, win: %s)", SideLabel(s.Side), s.MatchesPlayed, FormatPct(s.WinPctSide))
}

func operatorText(op models.OperatorTotals) string {
	return fmt.Sprintf("%s, %s (matches: %d, win: %s, kills/match: %s)",
		op.OperatorName, SideLabel(op.Side), op.MatchesPlayed, FormatPct(op.WinPct), FormatKillsPerMatch(op.KillsPerMatch))
}

func overviewText(r models.OverviewRow) string {
	return fmt.Sprintf("matches: %d, wins: %d, win: %s, kills: %d, deaths: %d, K/D: %s",
		r.MatchesPlayed, r.MatchesWon, FormatPct(r.WinPct), r.Kills, r.Deaths, FormatRatio(r.KDRatio))
}
