package models

const (
	SideAttacker = "attacker"
	SideDefender = "defender"
	SideAll      = "all"

	UnknownName = "Unknown"
	TeamLabel   = "Team"
)

type OverviewRow struct {
	Participant   string  `json:"participant"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	MatchesLost   int     `json:"matchesLost"`
	WinPct        float64 `json:"winPct"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	KDRatio       float64 `json:"kdRatio"`
}

type MapRow struct {
	Participant   string  `json:"participant"`
	MapName       string  `json:"mapName"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	WinPct        float64 `json:"winPct"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	KDRatio       float64 `json:"kdRatio"`
}

type OperatorRow struct {
	Participant   string  `json:"participant"`
	OperatorName  string  `json:"operatorName"`
	Side          string  `json:"side"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	WinPct        float64 `json:"winPct"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	KDRatio       float64 `json:"kdRatio"`
}

type PlaystyleEntry struct {
	Name         string  `json:"name"`
	UsagePercent float64 `json:"usagePercent"`
}

// MapTotals is one map summed across the roster.
type MapTotals struct {
	MapName       string  `json:"mapName"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	MatchesLost   int     `json:"matchesLost"`
	WinPct        float64 `json:"winPct"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	KDRatio       float64 `json:"kdRatio"`
}

// OperatorTotals is an operator/side group. Participant is empty for
// roster-wide totals.
type OperatorTotals struct {
	Participant   string   `json:"participant,omitempty"`
	OperatorName  string   `json:"operatorName"`
	Side          string   `json:"side"`
	MatchesPlayed int      `json:"matchesPlayed"`
	MatchesWon    int      `json:"matchesWon"`
	MatchesLost   int      `json:"matchesLost"`
	WinPct        float64  `json:"winPct"`
	Kills         int      `json:"kills"`
	Deaths        int      `json:"deaths"`
	KDRatio       float64  `json:"kdRatio"`
	KillsPerMatch *float64 `json:"killsPerMatch"`
}

type SideTotals struct {
	Side          string  `json:"side"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	MatchesLost   int     `json:"matchesLost"`
	WinPctSide    float64 `json:"winPctSide"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	KDRatio       float64 `json:"kdRatio"`
}

// OperatorRankings are three independent top-N slices; an operator may appear
// in all of them.
type OperatorRankings struct {
	MostPlayed           []OperatorTotals `json:"mostPlayed"`
	HighestWinPct        []OperatorTotals `json:"highestWinPct"`
	HighestKillsPerMatch []OperatorTotals `json:"highestKillsPerMatch"`
}

func (r OperatorRankings) Empty() bool {
	return len(r.MostPlayed) == 0
}
