// Package wordstore saves the words of a trie to a YAML snapshot and replays
// them into a trie on startup.
package wordstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// ErrEmptyPath is returned by Open when no snapshot path is given.
var ErrEmptyPath = errors.New("wordstore: empty snapshot path")

// snapshot is the on-disk layout.
type snapshot struct {
	Count int      `yaml:"count"`
	Words []string `yaml:"words"`
}

// Store reads and writes a snapshot file.
type Store struct {
	path string
	log  zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the Store. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// Open returns a Store for the snapshot at path. The file need not exist yet.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the snapshot path.
func (s *Store) Path() string {
	return s.path
}

// Load inserts every word of the snapshot into t and returns how many of them
// were new to t. A missing snapshot loads nothing.
func (s *Store) Load(t *trie.Trie) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("No snapshot to load")
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}

	added := 0
	for _, word := range snap.Words {
		if t.Insert(word) {
			added++
		}
	}
	if snap.Count != 0 && snap.Count != len(snap.Words) {
		s.log.Warn().
			Int("count", snap.Count).
			Int("words", len(snap.Words)).
			Msg("Snapshot count does not match its words")
	}
	s.log.Info().
		Str("path", s.path).
		Int("read", len(snap.Words)).
		Int("added", added).
		Msg("Loaded snapshot")
	return added, nil
}

// Save writes every word of t to the snapshot, replacing it atomically.
func (s *Store) Save(t *trie.Trie) error {
	words := t.Words()
	data, err := yaml.Marshal(snapshot{Count: len(words), Words: words})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.path, err)
	}

	s.log.Info().Str("path", s.path).Int("words", len(words)).Msg("Saved snapshot")
	return nil
}
