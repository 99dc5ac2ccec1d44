package repository

import "siegestats/internal/models"

type Config struct {
	PlayersDir string `env:"PLAYERS_DIR" envDefault:"players"`
}

type Records interface {
	Participants() ([]string, error)
	Load(participant string) (*models.PlayerRecords, error)
}

type Repository struct {
	Records
	cache *RecordCache
}

func NewRepository(cfg *Config, cache *RecordCache) *Repository {
	return &Repository{
		Records: NewFileStore(cfg.PlayersDir, cache),
		cache:   cache,
	}
}

// Invalidate drops every memoized record so the next run rereads the files.
func (r *Repository) Invalidate() {
	if r.cache != nil {
		r.cache.Clear()
	}
}
