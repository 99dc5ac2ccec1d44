package analysis

import (
	"sort"
	"strconv"
	"strings"

	"siegestats/internal/models"
)

const (
	overviewSegmentType = "overview"
	playstyleKeyPrefix  = "playstyle"

	statMatchesPlayed = "matchesPlayed"
	statMatchesWon    = "matchesWon"
	statKills         = "kills"
	statDeaths        = "deaths"
)

// StatValue reads stats[key].value as a number. Absent keys, null values and
// non-numeric values all read as 0.
func StatValue(stats models.Stats, key string) float64 {
	entry, ok := stats[key]
	if !ok || entry == nil {
		return 0
	}
	return numeric(entry.Value)
}

func numeric(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(val, "%")), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

type counts struct {
	played, won, kills, deaths int
}

func readCounts(stats models.Stats) counts {
	return counts{
		played: toCount(StatValue(stats, statMatchesPlayed)),
		won:    toCount(StatValue(stats, statMatchesWon)),
		kills:  toCount(StatValue(stats, statKills)),
		deaths: toCount(StatValue(stats, statDeaths)),
	}
}

// NewOverviewRow builds a fully derived overview row for a label.
func NewOverviewRow(label string, played, won, kills, deaths int) models.OverviewRow {
	return models.OverviewRow{
		Participant:   label,
		MatchesPlayed: played,
		MatchesWon:    won,
		MatchesLost:   played - won,
		WinPct:        WinPct(won, played),
		Kills:         kills,
		Deaths:        deaths,
		KDRatio:       KDRatio(kills, deaths),
	}
}

// OverviewSegment returns the first segment typed "overview".
func OverviewSegment(rec *models.OverviewRecord) (*models.Segment, bool) {
	if rec == nil {
		return nil, false
	}
	for i := range rec.Segments {
		if rec.Segments[i].Type == overviewSegmentType {
			return &rec.Segments[i], true
		}
	}
	return nil, false
}

// ExtractOverview returns false when the record has no overview segment.
func ExtractOverview(rec *models.OverviewRecord, participant string) (models.OverviewRow, bool) {
	seg, ok := OverviewSegment(rec)
	if !ok {
		return models.OverviewRow{}, false
	}
	c := readCounts(seg.Stats)
	return NewOverviewRow(participant, c.played, c.won, c.kills, c.deaths), true
}

// ExtractMaps converts maps.json entries. Entries without a usable map name
// are dropped.
func ExtractMaps(entries []models.Entry, participant string) []models.MapRow {
	rows := make([]models.MapRow, 0, len(entries))
	for _, e := range entries {
		name := firstString(e.Metadata, "mapName", e.Attributes, "map", models.UnknownName)
		if IsUnknownName(name) {
			continue
		}
		c := readCounts(e.Stats)
		rows = append(rows, models.MapRow{
			Participant:   participant,
			MapName:       name,
			MatchesPlayed: c.played,
			MatchesWon:    c.won,
			WinPct:        WinPct(c.won, c.played),
			Kills:         c.kills,
			Deaths:        c.deaths,
			KDRatio:       KDRatio(c.kills, c.deaths),
		})
	}
	return rows
}

// ExtractOperators converts operators.json entries, dropping any entry whose
// name is blank or "unknown".
func ExtractOperators(entries []models.Entry, participant string) []models.OperatorRow {
	rows := make([]models.OperatorRow, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(firstString(e.Metadata, "operatorName", e.Attributes, "operator", ""))
		if IsUnknownName(name) {
			continue
		}
		side := stringField(e.Attributes, "side")
		if side == "" {
			side = models.SideAll
		}
		c := readCounts(e.Stats)
		rows = append(rows, models.OperatorRow{
			Participant:   participant,
			OperatorName:  name,
			Side:          side,
			MatchesPlayed: c.played,
			MatchesWon:    c.won,
			WinPct:        WinPct(c.won, c.played),
			Kills:         c.kills,
			Deaths:        c.deaths,
			KDRatio:       KDRatio(c.kills, c.deaths),
		})
	}
	return rows
}

// ExtractPlaystyles lists every playstyle stat of the overview segment,
// most used first.
func ExtractPlaystyles(rec *models.OverviewRecord) []models.PlaystyleEntry {
	seg, ok := OverviewSegment(rec)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(seg.Stats))
	for key := range seg.Stats {
		if strings.HasPrefix(key, playstyleKeyPrefix) {
			keys = append(keys, key)
		}
	}
	// map iteration is random; fix the order before the stable sort
	sort.Strings(keys)

	styles := make([]models.PlaystyleEntry, 0, len(keys))
	for _, key := range keys {
		entry := seg.Stats[key]
		if entry == nil {
			continue
		}
		usage := 0.0
		if entry.Metadata.Usage != nil {
			usage = numeric(entry.Metadata.Usage.Value)
		}
		styles = append(styles, models.PlaystyleEntry{Name: entry.DisplayName, UsagePercent: usage})
	}

	sort.SliceStable(styles, func(i, j int) bool {
		return styles[i].UsagePercent > styles[j].UsagePercent
	})
	return styles
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func firstString(primary map[string]any, primaryKey string, fallback map[string]any, fallbackKey, def string) string {
	if s := stringField(primary, primaryKey); s != "" {
		return s
	}
	if s := stringField(fallback, fallbackKey); s != "" {
		return s
	}
	return def
}
