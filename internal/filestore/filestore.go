// Package filestore persists save blobs as one JSON file per key.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store writes each key to <dir>/<key>.json and keeps a read cache.
type Store struct {
	mu    sync.RWMutex
	dir   string
	cache map[string][]byte
}

// New creates the directory if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &Store{dir: dir, cache: make(map[string][]byte)}, nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: save key %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get returns the stored blob
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return append([]byte(nil), data...), nil
	}
	s.mu.RUnlock()

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgLoadedFromDisk, "key", key, "bytes", len(data))
	return append([]byte(nil), data...), nil
}

// Put writes through a temp file and rename so a crash never leaves a torn file
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	s.cache[key] = append([]byte(nil), data...)
	logger.FromContext(ctx).Debug(LogMsgWrittenToDisk, "key", key, "bytes", len(data))
	return nil
}

// Delete removes the file; deleting a missing key is not an error
func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, key)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// Ping checks the directory is still there
func (s *Store) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, s.dir)
	}
	return nil
}
