// Package search indexes published sites for the site directory. Meilisearch
// is preferred, PostgreSQL full-text search is the durable fallback and an
// in-process index serves single-node setups without either.
package search

import (
	"strings"
	"time"

	"vitrin/api/internal/section"
)

// SiteRecord is the data we index for one published project.
type SiteRecord struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"businessName"`
	Sector       string    `json:"sector"`
	Title        string    `json:"title"`
	Headlines    []string  `json:"headlines"`
	CommitHash   string    `json:"commitHash"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// Result is a single search hit returned to the caller.
type Result struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	Sector       string `json:"sector"`
	Title        string `json:"title"`
	Snippet      string `json:"snippet"`
}

type Query struct {
	Text   string
	Sector string // canonical sector key; empty = all
	Limit  int
	Offset int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

type Indexer interface {
	IndexSite(rec SiteRecord) error
	DeleteSite(id string) error
}

// RecordFromSections derives the indexed fields from a published document.
func RecordFromSections(projectID string, sections []section.Instance) SiteRecord {
	rec := SiteRecord{ID: projectID, Headlines: []string{}}
	for _, s := range sections {
		p := s.Props
		if rec.Sector == "" {
			rec.Sector = p.String(section.SectorField)
		}
		if rec.BusinessName == "" {
			rec.BusinessName = firstNonBlank(p.String("businessName"), p.String("badge"), p.String("name"))
		}
		kind := section.KindOf(s.Type)
		if kind == section.KindHero && rec.Title == "" {
			rec.Title = p.String("title")
			continue
		}
		if h := firstNonBlank(p.String("sectionTitle"), p.String("title")); h != "" && kind != section.KindFooter {
			rec.Headlines = append(rec.Headlines, h)
		}
	}
	return rec
}

func (r SiteRecord) snippet() string {
	return strings.Join(r.Headlines, " · ")
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
