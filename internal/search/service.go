package search

import (
	"context"
	"log/slog"
)

// Service is the facade that tries Meilisearch first, then PostgreSQL FTS,
// then the in-process index.
type Service struct {
	meili    *Meili
	pgfts    *PgFTS
	fallback *Memory
	logger   *slog.Logger
}

// NewService creates a search service. meili and pgfts may be nil.
func NewService(meili *Meili, pgfts *PgFTS, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{meili: meili, pgfts: pgfts, fallback: NewMemory(), logger: logger}
}

func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		s.logger.Warn("meilisearch error, falling back", "error", err)
	}
	if s.pgfts != nil {
		results, total, err := s.pgfts.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		s.logger.Warn("pgfts error, falling back", "error", err)
	}
	results, total, _ := s.fallback.Search(q)
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// IndexSite writes the durable index synchronously and pushes to Meilisearch
// fire-and-forget.
func (s *Service) IndexSite(rec SiteRecord) {
	_ = s.fallback.IndexSite(rec)
	if s.pgfts != nil {
		if err := s.pgfts.IndexSite(rec); err != nil {
			s.logger.Warn("pgfts index failed", "project_id", rec.ID, "error", err)
		}
	}
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexSite(rec); err != nil {
			s.logger.Warn("meilisearch index failed", "project_id", rec.ID, "error", err)
		}
	}()
}

func (s *Service) DeleteSite(id string) {
	_ = s.fallback.DeleteSite(id)
	if s.pgfts != nil {
		if err := s.pgfts.DeleteSite(id); err != nil {
			s.logger.Warn("pgfts delete failed", "project_id", id, "error", err)
		}
	}
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeleteSite(id); err != nil {
			s.logger.Warn("meilisearch delete failed", "project_id", id, "error", err)
		}
	}()
}

// Reindex pushes every site known to PostgreSQL into Meilisearch and the
// in-process index. Called once at startup.
func (s *Service) Reindex(ctx context.Context) {
	if s.pgfts == nil {
		return
	}
	recs, err := s.pgfts.LoadAll(ctx)
	if err != nil {
		s.logger.Warn("reindex load failed", "error", err)
		return
	}
	for _, rec := range recs {
		_ = s.fallback.IndexSite(rec)
	}
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	if err := s.meili.IndexSites(recs); err != nil {
		s.logger.Warn("reindex meilisearch failed", "error", err)
	}
}

// Backend names the searcher currently answering queries.
func (s *Service) Backend() string {
	switch {
	case s.meili != nil && s.meili.Healthy():
		return "meilisearch"
	case s.pgfts != nil:
		return "postgres"
	default:
		return "memory"
	}
}
