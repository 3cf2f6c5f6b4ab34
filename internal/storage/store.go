package storage

import (
	"errors"
	"fmt"

	"github.com/marketlens/marketlens/internal/model"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key identifies a stored result bundle.
type Key struct {
	Ticker  string      `json:"ticker"`
	Model   model.Model `json:"model"`
	Horizon int         `json:"horizon"`
}

// Path returns the file-system friendly representation of the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%d", k.Ticker, k.Model, k.Horizon)
}

// Persistence stores and loads result bundles by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// VoidStorage ignores all writes and finds nothing.
type VoidStorage struct {
}

// NewVoidStorage creates a storage that drops everything.
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}

func (v VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (v VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}
