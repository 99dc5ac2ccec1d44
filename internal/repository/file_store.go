package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-json"

	"siegestats/internal/models"
)

var (
	ErrPlayersDirMissing  = errors.New("players directory not found")
	ErrInvalidParticipant = errors.New("participant must be a single folder name")
)

// SourceError reports a record file that exists but could not be read or decoded.
type SourceError struct {
	Source models.Source
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// FileStore reads <baseDir>/<participant>/{overview,maps,operators}.json.
type FileStore struct {
	baseDir string
	cache   *RecordCache
}

// NewFileStore creates a store rooted at baseDir. A nil cache disables memoization.
func NewFileStore(baseDir string, cache *RecordCache) *FileStore {
	return &FileStore{baseDir: baseDir, cache: cache}
}

func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// Participants lists participant directories sorted by name.
func (s *FileStore) Participants() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPlayersDirMissing, s.baseDir)
		}
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads every source of a participant. Absent files leave the field nil.
// Broken files are reported as joined *SourceError values while the readable
// sources are still returned.
func (s *FileStore) Load(participant string) (*models.PlayerRecords, error) {
	if !validParticipant(participant) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParticipant, participant)
	}
	if _, err := os.Stat(s.baseDir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPlayersDirMissing, s.baseDir)
	}

	rec := &models.PlayerRecords{Participant: participant}
	var errs []error

	var overview models.OverviewRecord
	found, err := s.read(participant, models.SourceOverview, &overview)
	if err != nil {
		errs = append(errs, err)
	} else if found {
		rec.Overview = &overview
	}

	var maps []models.Entry
	found, err = s.read(participant, models.SourceMaps, &maps)
	if err != nil {
		errs = append(errs, err)
	} else if found {
		rec.Maps, rec.HasMaps = maps, true
	}

	var operators []models.Entry
	found, err = s.read(participant, models.SourceOperators, &operators)
	if err != nil {
		errs = append(errs, err)
	} else if found {
		rec.Operators, rec.HasOperators = operators, true
	}

	return rec, errors.Join(errs...)
}

func validParticipant(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}

func (s *FileStore) path(participant string, src models.Source) string {
	return filepath.Join(s.baseDir, participant, src.FileName())
}

// read decodes one source into dst. It returns false without error when the
// file does not exist. Cached content is reused while the file keeps its
// modification time and size.
func (s *FileStore) read(participant string, src models.Source, dst any) (bool, error) {
	path := s.path(participant, src)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if s.cache != nil {
				s.cache.Delete(path)
			}
			return false, nil
		}
		return false, &SourceError{Source: src, Path: path, Err: err}
	}

	data, cached := []byte(nil), false
	if s.cache != nil {
		data, cached = s.cache.Get(path, info.ModTime(), info.Size())
	}
	if !cached {
		data, err = os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			return false, &SourceError{Source: src, Path: path, Err: err}
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		if s.cache != nil {
			s.cache.Delete(path)
		}
		return false, &SourceError{Source: src, Path: path, Err: err}
	}

	if s.cache != nil && !cached {
		s.cache.Set(path, info.ModTime(), info.Size(), data)
	}
	return true, nil
}
