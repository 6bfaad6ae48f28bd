// Package highscore persists the single best score as a plain-text integer.
package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store loads and saves the high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the high score as a decimal integer in a text file.
// Writes overwrite the file in place.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. A leading ~ is expanded to
// the user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the high score. A missing file is not an error and yields 0.
// Unreadable or malformed contents yield 0 together with the error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot parse %s: %w", s.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("highscore: negative score %d in %s", score, s.path)
	}
	return score, nil
}

// Save overwrites the file with score, creating parent directories.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("highscore: refusing to save negative score %d", score)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory for %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore keeps the high score in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryStore returns a store seeded with score.
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

// Load returns the stored score.
func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save replaces the stored score.
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
