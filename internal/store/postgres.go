package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vitrin/api/internal/persist"
	"vitrin/api/internal/section"
)

// PostgresStore keeps one row per project document in site_documents, with
// sections and theme as JSONB.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Save(ctx context.Context, rec persist.Record) error {
	sections := rec.Sections
	if sections == nil {
		sections = []section.Instance{}
	}
	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	theme := rec.Theme
	if theme == nil {
		theme = section.Theme{}
	}
	themeJSON, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_documents (document_id, sections, theme, updated_at)
		VALUES ($1, $2::jsonb, $3::jsonb, $4)
		ON CONFLICT (document_id) DO UPDATE
		SET sections=EXCLUDED.sections, theme=EXCLUDED.theme, updated_at=EXCLUDED.updated_at
	`, rec.DocumentID, string(sectionsJSON), string(themeJSON), updatedAt)
	if err != nil {
		return fmt.Errorf("upsert site document %s: %w", rec.DocumentID, err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, documentID string) (persist.Record, error) {
	var (
		sectionsJSON []byte
		themeJSON    []byte
		updatedAt    time.Time
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT sections, theme, updated_at
		FROM site_documents
		WHERE document_id=$1
	`, documentID).Scan(&sectionsJSON, &themeJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return persist.Record{}, persist.ErrNotFound
	}
	if err != nil {
		return persist.Record{}, fmt.Errorf("load site document %s: %w", documentID, err)
	}

	envelope, err := json.Marshal(map[string]json.RawMessage{
		"sections": nonNullJSON(sectionsJSON, "[]"),
		"theme":    nonNullJSON(themeJSON, "{}"),
	})
	if err != nil {
		return persist.Record{}, fmt.Errorf("assemble envelope %s: %w", documentID, err)
	}
	return persist.DecodeRecord(documentID, envelope, updatedAt.UTC())
}

func (s *PostgresStore) Delete(ctx context.Context, documentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM site_documents WHERE document_id=$1`, documentID)
	if err != nil {
		return fmt.Errorf("delete site document %s: %w", documentID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return persist.ErrNotFound
	}
	return nil
}

// DocumentSummary is one row of the document listing.
type DocumentSummary struct {
	DocumentID   string    `json:"documentId"`
	SectionCount int       `json:"sectionCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListDocuments returns the most recently updated documents first.
func (s *PostgresStore) ListDocuments(ctx context.Context, limit int) ([]DocumentSummary, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, jsonb_array_length(sections), updated_at
		FROM site_documents
		ORDER BY updated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list site documents: %w", err)
	}
	defer rows.Close()

	out := make([]DocumentSummary, 0)
	for rows.Next() {
		var d DocumentSummary
		if err := rows.Scan(&d.DocumentID, &d.SectionCount, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site document: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate site documents: %w", err)
	}
	return out, nil
}

func nonNullJSON(raw []byte, fallback string) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(fallback)
	}
	return json.RawMessage(raw)
}

var _ persist.Store = (*PostgresStore)(nil)
