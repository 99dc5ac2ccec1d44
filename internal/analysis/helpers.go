package analysis

import (
	"math"
	"strings"
)

// WinPct returns won/played as a percentage, 0 when nothing was played.
func WinPct(won, played int) float64 {
	if played == 0 {
		return 0.0
	}
	return float64(won) * 100 / float64(played)
}

// KDRatio is zero-guarded: no deaths means 0, not infinity.
func KDRatio(kills, deaths int) float64 {
	if deaths == 0 {
		return 0.0
	}
	return float64(kills) / float64(deaths)
}

// KillsPerMatch is undefined when no matches were played; callers render a
// blank instead of 0.
func KillsPerMatch(kills, played int) (float64, bool) {
	if played == 0 {
		return 0, false
	}
	return float64(kills) / float64(played), true
}

func killsPerMatchPtr(kills, played int) *float64 {
	v, ok := KillsPerMatch(kills, played)
	if !ok {
		return nil
	}
	return &v
}

// IsUnknownName matches blank labels and the tracker's "Unknown" placeholder.
func IsUnknownName(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || strings.EqualFold(name, "unknown")
}

func toCount(v float64) int {
	return int(math.Round(v))
}
