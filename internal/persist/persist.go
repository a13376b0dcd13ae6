// Package persist defines the document persistence contract shared by the
// Postgres, Redis and file sinks, plus the debounced Autosaver that feeds them.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gowebpki/jcs"

	"vitrin/api/internal/section"
)

var ErrNotFound = errors.New("document not found")

// Record is one flushed document: the opaque sections/theme blob per project.
type Record struct {
	DocumentID string             `json:"documentId"`
	Sections   []section.Instance `json:"sections"`
	Theme      section.Theme      `json:"theme"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func (r Record) Clone() Record {
	r.Sections = section.CloneInstances(r.Sections)
	r.Theme = r.Theme.Clone()
	return r
}

// Envelope encodes the persisted {sections, theme} layout.
func (r Record) Envelope() ([]byte, error) {
	return section.EncodeEnvelope(r.Sections, r.Theme)
}

// DecodeRecord validates raw as an envelope and wraps it as a Record.
func DecodeRecord(documentID string, raw []byte, updatedAt time.Time) (Record, error) {
	env, err := section.DecodeEnvelope(raw)
	if err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", documentID, err)
	}
	return Record{DocumentID: documentID, Sections: env.Sections, Theme: env.Theme, UpdatedAt: updatedAt}, nil
}

type Sink interface {
	Save(ctx context.Context, rec Record) error
}

type Loader interface {
	// Load returns ErrNotFound (possibly wrapped) for unknown documents.
	Load(ctx context.Context, documentID string) (Record, error)
}

type Store interface {
	Sink
	Loader
}

// Fingerprint is the comparison string for a document: its envelope in RFC 8785
// canonical form, so key order and number spelling never register as a change.
func Fingerprint(sections []section.Instance, theme section.Theme) (string, error) {
	raw, err := section.EncodeEnvelope(sections, theme)
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize document: %w", err)
	}
	return string(canonical), nil
}

// Chain writes to every store and loads from the first one that has the
// document. Stores are consulted in the order given.
type Chain struct {
	stores []Store
}

func NewChain(stores ...Store) *Chain {
	c := &Chain{}
	for _, s := range stores {
		if s != nil {
			c.stores = append(c.stores, s)
		}
	}
	return c
}

func (c *Chain) Len() int {
	return len(c.stores)
}

func (c *Chain) Save(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range c.stores {
		if err := s.Save(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Chain) Load(ctx context.Context, documentID string) (Record, error) {
	var errs []error
	for _, s := range c.stores {
		rec, err := s.Load(ctx, documentID)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrNotFound) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Record{}, errors.Join(errs...)
	}
	return Record{}, ErrNotFound
}

// MemoryStore keeps records in process. Used when no backend is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (m *MemoryStore) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.DocumentID] = rec.Clone()
	return nil
}

func (m *MemoryStore) Load(_ context.Context, documentID string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[documentID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.Clone(), nil
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*Chain)(nil)

// MarshalRecord and UnmarshalRecord are the whole-record JSON form used by the
// key/value sinks.
func MarshalRecord(rec Record) ([]byte, error) {
	if rec.Sections == nil {
		rec.Sections = []section.Instance{}
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record %s: %w", rec.DocumentID, err)
	}
	return raw, nil
}

func UnmarshalRecord(raw []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}
