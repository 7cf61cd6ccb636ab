package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("no saved data")

// Backend stores one opaque save blob
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileBackend keeps the blob in a file, replaced atomically on write
type FileBackend struct {
	path string
}

// NewFileBackend stores saves at path, creating parent directories on first write
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the save file location
func (f *FileBackend) Path() string { return f.path }

func (f *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return data, nil
}

func (f *FileBackend) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp save: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// MemoryBackend keeps the blob in memory, for tests and headless runs
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	// FailWrites makes every Write return an error
	FailWrites bool
}

func (m *MemoryBackend) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNotFound
	}
	return slices.Clone(m.data), nil
}

func (m *MemoryBackend) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("memory backend: write refused")
	}
	m.data = slices.Clone(data)
	return nil
}
