package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// PgFTS implements Searcher and Indexer on the published_sites table using
// PostgreSQL full-text search. The 'simple' configuration is used because
// site copy is mostly Turkish business names that stemming would mangle.
type PgFTS struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPgFTS(db *sql.DB) *PgFTS {
	return &PgFTS{db: db, timeout: 5 * time.Second}
}

// Healthy always returns true; if Postgres is down the document sink is too.
func (p *PgFTS) Healthy() bool {
	return true
}

func (p *PgFTS) IndexSite(rec SiteRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	publishedAt := rec.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO published_sites (project_id, business_name, sector, title, headlines, commit_hash, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id) DO UPDATE SET
			business_name=EXCLUDED.business_name,
			sector=EXCLUDED.sector,
			title=EXCLUDED.title,
			headlines=EXCLUDED.headlines,
			commit_hash=EXCLUDED.commit_hash,
			published_at=EXCLUDED.published_at
	`, rec.ID, rec.BusinessName, rec.Sector, rec.Title, strings.Join(rec.Headlines, "\n"), rec.CommitHash, publishedAt)
	if err != nil {
		return fmt.Errorf("index site %s: %w", rec.ID, err)
	}
	return nil
}

func (p *PgFTS) DeleteSite(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if _, err := p.db.ExecContext(ctx, `DELETE FROM published_sites WHERE project_id=$1`, id); err != nil {
		return fmt.Errorf("delete site %s: %w", id, err)
	}
	return nil
}

// Search ranks matches with ts_rank and returns the total match count through
// a window function.
func (p *PgFTS) Search(q Query) ([]Result, int, error) {
	if strings.TrimSpace(q.Text) == "" && q.Sector == "" {
		return nil, 0, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	args := []any{q.Text}
	where := []string{"($1 = '' OR s.fts @@ plainto_tsquery('simple', $1))"}
	if q.Sector != "" {
		args = append(args, q.Sector)
		where = append(where, fmt.Sprintf("s.sector = $%d", len(args)))
	}
	args = append(args, normalizeLimit(q.Limit), offset)

	query := fmt.Sprintf(`
		SELECT s.project_id, s.business_name, s.sector, s.title,
			ts_headline('simple', s.headlines, plainto_tsquery('simple', $1), 'MaxFragments=1,MaxWords=20') AS snippet,
			COUNT(*) OVER() AS total
		FROM published_sites s
		WHERE %s
		ORDER BY ts_rank(s.fts, plainto_tsquery('simple', $1)) DESC, s.published_at DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgfts search: %w", err)
	}
	defer rows.Close()

	var results []Result
	total := 0
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.BusinessName, &r.Sector, &r.Title, &r.Snippet, &total); err != nil {
			return nil, 0, fmt.Errorf("pgfts scan: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgfts rows: %w", err)
	}
	return results, total, nil
}

// LoadAll returns every published site, used to seed Meilisearch.
func (p *PgFTS) LoadAll(ctx context.Context) ([]SiteRecord, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT project_id, business_name, sector, title, headlines, commit_hash, published_at
		FROM published_sites
		ORDER BY project_id
	`)
	if err != nil {
		return nil, fmt.Errorf("load published sites: %w", err)
	}
	defer rows.Close()

	var out []SiteRecord
	for rows.Next() {
		var (
			rec       SiteRecord
			headlines string
		)
		if err := rows.Scan(&rec.ID, &rec.BusinessName, &rec.Sector, &rec.Title, &headlines, &rec.CommitHash, &rec.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan published site: %w", err)
		}
		rec.Headlines = splitHeadlines(headlines)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func splitHeadlines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
