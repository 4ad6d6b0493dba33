package leverage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store loads and saves the persisted form of a book.
type Store interface {
	// Load returns the last saved record, or false if there is none or it
	// cannot be read. Both cases mean "start with an empty book".
	Load() (*Record, bool)
	// Save persists r. It never alters the book r was taken from.
	Save(r *Record) error
}

// FileStore is a Store backed by a single JSON file.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore returns a store for the file at path.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "store").Str("path", path).Logger(),
	}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the snapshot file. A missing or unparseable file is reported as
// absent, and logged.
func (s *FileStore) Load() (*Record, bool) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info().Msg("no snapshot yet, starting with an empty book")
		return nil, false
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot read snapshot, starting with an empty book")
		return nil, false
	}
	r, err := DecodeRecord(bytes.NewReader(raw))
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot parse snapshot, starting with an empty book")
		return nil, false
	}
	s.log.Debug().Int("stocks", len(r.Stocks)).Int("futures", len(r.Futures)).Msg("snapshot loaded")
	return r, true
}

// Save writes r to a temporary file next to the snapshot, then renames it,
// so that a failed save leaves the previous snapshot intact.
func (s *FileStore) Save(r *Record) error {
	if err := s.save(r); err != nil {
		s.log.Error().Err(err).Msg("cannot save snapshot")
		return err
	}
	s.log.Debug().Msg("snapshot saved")
	return nil
}

func (s *FileStore) save(r *Record) error {
	var buf bytes.Buffer
	if err := EncodeRecord(&buf, r); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create folder %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	return nil
}
