package analysis

import (
	"sort"

	"siegestats/internal/models"
)

const (
	DefaultTopN            = 10
	DefaultSideTopN        = 5
	DefaultTopPlayedMaps   = 10
	DefaultOperatorMinimum = 100
	DefaultMapMinimum      = 10
)

// FilterMaps keeps maps with at least threshold matches.
func FilterMaps(maps []models.MapTotals, threshold int) []models.MapTotals {
	out := make([]models.MapTotals, 0, len(maps))
	for _, m := range maps {
		if m.MatchesPlayed >= threshold {
			out = append(out, m)
		}
	}
	return out
}

// FilterOperators keeps operator groups with at least threshold matches.
func FilterOperators(ops []models.OperatorTotals, threshold int) []models.OperatorTotals {
	out := make([]models.OperatorTotals, 0, len(ops))
	for _, op := range ops {
		if op.MatchesPlayed >= threshold {
			out = append(out, op)
		}
	}
	return out
}

// OperatorsOf returns the rows belonging to one participant.
func OperatorsOf(ops []models.OperatorTotals, participant string) []models.OperatorTotals {
	out := make([]models.OperatorTotals, 0)
	for _, op := range ops {
		if op.Participant == participant {
			out = append(out, op)
		}
	}
	return out
}

// BestWorstMaps orders the qualifying maps by win rate, descending and
// ascending. Both are empty when no map reaches the threshold.
func BestWorstMaps(maps []models.MapTotals, threshold int) (best, worst []models.MapTotals) {
	eligible := FilterMaps(maps, threshold)
	if len(eligible) == 0 {
		return []models.MapTotals{}, []models.MapTotals{}
	}

	best = append([]models.MapTotals(nil), eligible...)
	sort.SliceStable(best, func(i, j int) bool { return best[i].WinPct > best[j].WinPct })

	worst = append([]models.MapTotals(nil), eligible...)
	sort.SliceStable(worst, func(i, j int) bool { return worst[i].WinPct < worst[j].WinPct })
	return best, worst
}

// TopPlayedMaps returns the n most played maps.
func TopPlayedMaps(maps []models.MapTotals, n int) []models.MapTotals {
	out := append([]models.MapTotals(nil), maps...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchesPlayed > out[j].MatchesPlayed })
	return head(out, n)
}

// SidePerformance lists sides with the most represented first. It is a display
// order, not a quality ranking.
func SidePerformance(sides []models.SideTotals) []models.SideTotals {
	out := make([]models.SideTotals, 0, len(sides))
	for _, s := range sides {
		s.MatchesLost = s.MatchesPlayed - s.MatchesWon
		s.WinPctSide = WinPct(s.MatchesWon, s.MatchesPlayed)
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchesPlayed > out[j].MatchesPlayed })
	return out
}

// BestWorstSide picks the sides with the highest and lowest win rate among
// sides that have matches.
func BestWorstSide(sides []models.SideTotals) (best, worst models.SideTotals, ok bool) {
	played := make([]models.SideTotals, 0, len(sides))
	for _, s := range sides {
		if s.MatchesPlayed > 0 {
			played = append(played, s)
		}
	}
	if len(played) == 0 {
		return models.SideTotals{}, models.SideTotals{}, false
	}
	sort.SliceStable(played, func(i, j int) bool { return played[i].WinPctSide > played[j].WinPctSide })
	return played[0], played[len(played)-1], true
}

// RankOperators filters by threshold and returns three independent top-N
// orderings. topN <= 0 falls back to DefaultTopN.
func RankOperators(ops []models.OperatorTotals, threshold, topN int) models.OperatorRankings {
	if topN <= 0 {
		topN = DefaultTopN
	}
	eligible := FilterOperators(ops, threshold)
	if len(eligible) == 0 {
		return models.OperatorRankings{
			MostPlayed:           []models.OperatorTotals{},
			HighestWinPct:        []models.OperatorTotals{},
			HighestKillsPerMatch: []models.OperatorTotals{},
		}
	}

	mostPlayed := append([]models.OperatorTotals(nil), eligible...)
	sort.SliceStable(mostPlayed, func(i, j int) bool {
		return mostPlayed[i].MatchesPlayed > mostPlayed[j].MatchesPlayed
	})

	byWin := append([]models.OperatorTotals(nil), eligible...)
	sortByWinPct(byWin)

	byKPM := append([]models.OperatorTotals(nil), eligible...)
	sort.SliceStable(byKPM, func(i, j int) bool {
		a, b := byKPM[i].KillsPerMatch, byKPM[j].KillsPerMatch
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	return models.OperatorRankings{
		MostPlayed:           head(mostPlayed, topN),
		HighestWinPct:        head(byWin, topN),
		HighestKillsPerMatch: head(byKPM, topN),
	}
}

// TopBottomOperator returns the best and worst operator by win rate for a
// participant among rows meeting the threshold.
func TopBottomOperator(ops []models.OperatorTotals, participant string, threshold int) (top, bottom models.OperatorTotals, ok bool) {
	eligible := FilterOperators(OperatorsOf(ops, participant), threshold)
	if len(eligible) == 0 {
		return models.OperatorTotals{}, models.OperatorTotals{}, false
	}
	sortByWinPct(eligible)
	return eligible[0], eligible[len(eligible)-1], true
}

// TopOperatorsBySide returns up to n operators of one side by win rate.
func TopOperatorsBySide(ops []models.OperatorTotals, participant, side string, threshold, n int) []models.OperatorTotals {
	eligible := FilterOperators(OperatorsOf(ops, participant), threshold)
	out := make([]models.OperatorTotals, 0)
	for _, op := range eligible {
		if op.Side == side {
			out = append(out, op)
		}
	}
	sortByWinPct(out)
	return head(out, n)
}

// BestOperatorPerSide returns the best attacker and defender, skipping sides
// with no qualifying operator.
func BestOperatorPerSide(ops []models.OperatorTotals, participant string, threshold int) []models.OperatorTotals {
	out := make([]models.OperatorTotals, 0, 2)
	for _, side := range []string{models.SideAttacker, models.SideDefender} {
		if top := TopOperatorsBySide(ops, participant, side, threshold, 1); len(top) > 0 {
			out = append(out, top[0])
		}
	}
	return out
}

// BestPlaystyle expects the list in ExtractPlaystyles order.
func BestPlaystyle(styles []models.PlaystyleEntry) (models.PlaystyleEntry, bool) {
	if len(styles) == 0 {
		return models.PlaystyleEntry{}, false
	}
	return styles[0], true
}

func sortByWinPct(ops []models.OperatorTotals) {
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].WinPct > ops[j].WinPct })
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
