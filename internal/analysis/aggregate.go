package analysis

import (
	"sort"

	"siegestats/internal/models"
)

type operatorKey struct {
	participant, operator, side string
}

// AggregateMaps sums map rows of every participant per map name. Output is
// sorted by map name.
func AggregateMaps(rows []models.MapRow) []models.MapTotals {
	groups := make(map[string]*counts)
	for _, r := range rows {
		c, ok := groups[r.MapName]
		if !ok {
			c = &counts{}
			groups[r.MapName] = c
		}
		c.played += r.MatchesPlayed
		c.won += r.MatchesWon
		c.kills += r.Kills
		c.deaths += r.Deaths
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.MapTotals, 0, len(names))
	for _, name := range names {
		c := groups[name]
		out = append(out, models.MapTotals{
			MapName:       name,
			MatchesPlayed: c.played,
			MatchesWon:    c.won,
			MatchesLost:   c.played - c.won,
			WinPct:        WinPct(c.won, c.played),
			Kills:         c.kills,
			Deaths:        c.deaths,
			KDRatio:       KDRatio(c.kills, c.deaths),
		})
	}
	return out
}

// AggregateOperatorsByTeam groups by (operator, side) across the roster.
func AggregateOperatorsByTeam(rows []models.OperatorRow) []models.OperatorTotals {
	return aggregateOperators(rows, false)
}

// AggregateOperatorsByPlayer groups by (participant, operator, side).
func AggregateOperatorsByPlayer(rows []models.OperatorRow) []models.OperatorTotals {
	return aggregateOperators(rows, true)
}

func aggregateOperators(rows []models.OperatorRow, perPlayer bool) []models.OperatorTotals {
	groups := make(map[operatorKey]*counts)
	for _, r := range rows {
		key := operatorKey{operator: r.OperatorName, side: r.Side}
		if perPlayer {
			key.participant = r.Participant
		}
		c, ok := groups[key]
		if !ok {
			c = &counts{}
			groups[key] = c
		}
		c.played += r.MatchesPlayed
		c.won += r.MatchesWon
		c.kills += r.Kills
		c.deaths += r.Deaths
	}

	keys := make([]operatorKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.participant != b.participant {
			return a.participant < b.participant
		}
		if a.operator != b.operator {
			return a.operator < b.operator
		}
		return a.side < b.side
	})

	out := make([]models.OperatorTotals, 0, len(keys))
	for _, k := range keys {
		c := groups[k]
		out = append(out, models.OperatorTotals{
			Participant:   k.participant,
			OperatorName:  k.operator,
			Side:          k.side,
			MatchesPlayed: c.played,
			MatchesWon:    c.won,
			MatchesLost:   c.played - c.won,
			WinPct:        WinPct(c.won, c.played),
			Kills:         c.kills,
			Deaths:        c.deaths,
			KDRatio:       KDRatio(c.kills, c.deaths),
			KillsPerMatch: killsPerMatchPtr(c.kills, c.played),
		})
	}
	return out
}

// AggregateSides groups the team operator aggregate by side. Kills and deaths
// are carried through so the side table can show K/D.
func AggregateSides(teamOps []models.OperatorTotals) []models.SideTotals {
	groups := make(map[string]*counts)
	for _, op := range teamOps {
		c, ok := groups[op.Side]
		if !ok {
			c = &counts{}
			groups[op.Side] = c
		}
		c.played += op.MatchesPlayed
		c.won += op.MatchesWon
		c.kills += op.Kills
		c.deaths += op.Deaths
	}

	sides := make([]string, 0, len(groups))
	for side := range groups {
		sides = append(sides, side)
	}
	sort.Strings(sides)

	out := make([]models.SideTotals, 0, len(sides))
	for _, side := range sides {
		c := groups[side]
		out = append(out, models.SideTotals{
			Side:          side,
			MatchesPlayed: c.played,
			MatchesWon:    c.won,
			MatchesLost:   c.played - c.won,
			WinPctSide:    WinPct(c.won, c.played),
			Kills:         c.kills,
			Deaths:        c.deaths,
			KDRatio:       KDRatio(c.kills, c.deaths),
		})
	}
	return out
}

// AggregateOverview sums per-participant overview rows into one team row.
func AggregateOverview(rows []models.OverviewRow) (models.OverviewRow, bool) {
	if len(rows) == 0 {
		return models.OverviewRow{}, false
	}
	var c counts
	for _, r := range rows {
		c.played += r.MatchesPlayed
		c.won += r.MatchesWon
		c.kills += r.Kills
		c.deaths += r.Deaths
	}
	return NewOverviewRow(models.TeamLabel, c.played, c.won, c.kills, c.deaths), true
}
