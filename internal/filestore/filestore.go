// Package filestore persists documents as JSON files under one directory.
// Writes go through a temp file and rename, so a crash never leaves a torn file.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"vitrin/api/internal/persist"
	"vitrin/api/internal/util"
)

const ext = ".json"

type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates dir if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(documentID string) (string, error) {
	if !util.ValidID(documentID) {
		return "", fmt.Errorf("invalid document id %q", documentID)
	}
	return filepath.Join(s.dir, documentID+ext), nil
}

func (s *Store) Save(_ context.Context, rec persist.Record) error {
	path, err := s.path(rec.DocumentID)
	if err != nil {
		return err
	}
	data, err := persist.MarshalRecord(rec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write document %s: %w", rec.DocumentID, err)
	}
	return nil
}

func (s *Store) Load(_ context.Context, documentID string) (persist.Record, error) {
	path, err := s.path(documentID)
	if err != nil {
		return persist.Record{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return persist.Record{}, persist.ErrNotFound
	}
	if err != nil {
		return persist.Record{}, fmt.Errorf("read document %s: %w", documentID, err)
	}
	return persist.UnmarshalRecord(data)
}

func (s *Store) Delete(_ context.Context, documentID string) error {
	path, err := s.path(documentID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return persist.ErrNotFound
		}
		return fmt.Errorf("remove document %s: %w", documentID, err)
	}
	return nil
}

// List returns the stored document ids in lexical order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list data dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ext))
	}
	sort.Strings(ids)
	return ids, nil
}

var _ persist.Store = (*Store)(nil)
