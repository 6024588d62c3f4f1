// Package save persists the best state between runs as a msgpack file
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/geometry-fighter/engine"
)

// formatVersion is written into every file; files with another version are rejected
const formatVersion = 1

// ErrVersion is returned for a save file written by an incompatible version
var ErrVersion = errors.New("unsupported save format")

// fileRecord is the on-disk layout
type fileRecord struct {
	Version   int       `msgpack:"v"`
	BestScore int       `msgpack:"best"`
	LastScore int       `msgpack:"last"`
	SavedAt   time.Time `msgpack:"saved_at"`
}

// FileStore is an engine.ScoreStore backed by a single file
type FileStore struct {
	path string
	now  func() time.Time
}

var _ engine.ScoreStore = (*FileStore)(nil)

// NewFileStore creates a store writing to path; the parent directory is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the save file location
func (s *FileStore) Path() string { return s.path }

// Save writes rec atomically through a temp file and rename
func (s *FileStore) Save(rec engine.ScoreRecord) error {
	data, err := msgpack.Marshal(&fileRecord{
		Version:   formatVersion,
		BestScore: rec.BestScore,
		LastScore: rec.LastScore,
		SavedAt:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load reads the saved record; a missing file returns engine.ErrNoRecord
func (s *FileStore) Load() (engine.ScoreRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return engine.ScoreRecord{}, engine.ErrNoRecord
		}
		return engine.ScoreRecord{}, fmt.Errorf("read save: %w", err)
	}

	var rec fileRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return engine.ScoreRecord{}, fmt.Errorf("decode save %s: %w", s.path, err)
	}
	if rec.Version != formatVersion {
		return engine.ScoreRecord{}, fmt.Errorf("%w: version %d", ErrVersion, rec.Version)
	}
	if rec.BestScore < 0 || rec.LastScore < 0 {
		return engine.ScoreRecord{}, fmt.Errorf("decode save %s: negative score", s.path)
	}

	return engine.ScoreRecord{BestScore: rec.BestScore, LastScore: rec.LastScore}, nil
}

// SavedAt returns the timestamp of the last successful save, or zero if unreadable
func (s *FileStore) SavedAt() time.Time {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return time.Time{}
	}
	var rec fileRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return time.Time{}
	}
	return rec.SavedAt
}
