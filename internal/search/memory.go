package search

import (
	"sort"
	"strings"
	"sync"

	"vitrin/api/internal/sector"
)

// Memory is a process-local index. Matching folds case and diacritics the same
// way sector keys are normalized, so "kuafor" finds "Kuaför Elif".
type Memory struct {
	mu    sync.RWMutex
	sites map[string]SiteRecord
}

func NewMemory() *Memory {
	return &Memory{sites: make(map[string]SiteRecord)}
}

func (m *Memory) Healthy() bool { return true }

func (m *Memory) IndexSite(rec SiteRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.Headlines = append([]string(nil), rec.Headlines...)
	m.sites[rec.ID] = rec
	return nil
}

func (m *Memory) DeleteSite(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sites, id)
	return nil
}

func (m *Memory) Search(q Query) ([]Result, int, error) {
	terms := strings.Fields(strings.ReplaceAll(sector.Normalize(q.Text), "_", " "))

	type scored struct {
		rec   SiteRecord
		score int
	}
	m.mu.RLock()
	var hits []scored
	for _, rec := range m.sites {
		if q.Sector != "" && rec.Sector != q.Sector {
			continue
		}
		if score := matchScore(rec, terms); score > 0 || len(terms) == 0 {
			hits = append(hits, scored{rec: rec, score: score})
		}
	}
	m.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		if !hits[i].rec.PublishedAt.Equal(hits[j].rec.PublishedAt) {
			return hits[i].rec.PublishedAt.After(hits[j].rec.PublishedAt)
		}
		return hits[i].rec.ID < hits[j].rec.ID
	})

	total := len(hits)
	offset := q.Offset
	if offset < 0 || offset > total {
		offset = total
	}
	end := offset + normalizeLimit(q.Limit)
	if end > total {
		end = total
	}

	results := make([]Result, 0, end-offset)
	for _, h := range hits[offset:end] {
		results = append(results, Result{
			ID:           h.rec.ID,
			BusinessName: h.rec.BusinessName,
			Sector:       h.rec.Sector,
			Title:        h.rec.Title,
			Snippet:      h.rec.snippet(),
		})
	}
	return results, total, nil
}

// matchScore requires every term to match some field; business name matches
// weigh more than headline matches.
func matchScore(rec SiteRecord, terms []string) int {
	fields := []struct {
		text   string
		weight int
	}{
		{fold(rec.BusinessName), 3},
		{fold(rec.Title), 2},
		{fold(rec.Sector), 2},
		{fold(strings.Join(rec.Headlines, " ")), 1},
	}
	score := 0
	for _, term := range terms {
		best := 0
		for _, f := range fields {
			if f.weight > best && strings.Contains(f.text, term) {
				best = f.weight
			}
		}
		if best == 0 {
			return 0
		}
		score += best
	}
	return score
}

func fold(s string) string {
	return strings.ReplaceAll(sector.Normalize(s), "_", " ")
}
