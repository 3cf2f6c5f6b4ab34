package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marketlens/marketlens/internal/storage"
)

// Store persists result bundles as one json file per key.
type Store struct {
	dir string
}

// NewStore creates a file store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Store writes the value under the key path.
func (s *Store) Store(k storage.Key, value interface{}) error {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir '%s': %w", s.dir, err)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal '%+v': %w", k, err)
	}

	p := filepath.Join(s.dir, fmt.Sprintf("%s.json", k.Path()))
	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load reads the value stored under the key path.
func (s *Store) Load(k storage.Key, value interface{}) error {
	p := filepath.Join(s.dir, fmt.Sprintf("%s.json", k.Path()))

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", p, storage.NotFoundErr)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("could not unmarshal '%s': %w", p, storage.CouldNotLoadErr)
	}
	return nil
}
