package models

// Source names one of the three per-player record files.
type Source string

const (
	SourceOverview  Source = "overview"
	SourceMaps      Source = "maps"
	SourceOperators Source = "operators"
)

// FileName returns the on-disk file name for the source.
func (s Source) FileName() string {
	return string(s) + ".json"
}

var AllSources = []Source{SourceOverview, SourceMaps, SourceOperators}

type Stat struct {
	Value       any          `json:"value"`
	DisplayName string       `json:"displayName"`
	Metadata    StatMetadata `json:"metadata"`
}

type StatMetadata struct {
	Usage *Stat `json:"usage,omitempty"`
}

type Stats map[string]*Stat

type Segment struct {
	Type       string         `json:"type"`
	Metadata   map[string]any `json:"metadata"`
	Attributes map[string]any `json:"attributes"`
	Stats      Stats          `json:"stats"`
}

type OverviewRecord struct {
	Segments []Segment `json:"segments"`
}

// Entry is one element of maps.json or operators.json.
type Entry struct {
	Metadata   map[string]any `json:"metadata"`
	Attributes map[string]any `json:"attributes"`
	Stats      Stats          `json:"stats"`
}

// PlayerRecords holds whatever record sets were found for a participant.
// A nil field means the source file does not exist.
type PlayerRecords struct {
	Participant string
	Overview    *OverviewRecord
	Maps        []Entry
	Operators   []Entry

	HasMaps      bool
	HasOperators bool
}

// Has reports whether the given source was present on disk.
func (p *PlayerRecords) Has(src Source) bool {
	switch src {
	case SourceOverview:
		return p.Overview != nil
	case SourceMaps:
		return p.HasMaps
	case SourceOperators:
		return p.HasOperators
	default:
		return false
	}
}
