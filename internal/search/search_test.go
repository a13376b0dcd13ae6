package search

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrin/api/internal/section"
)

func seededMemory(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range []SiteRecord{
		{ID: "p1", BusinessName: "Kahve Durağı", Sector: "cafe", Title: "Güne kahveyle başlayın", Headlines: []string{"Menümüz"}, PublishedAt: base},
		{ID: "p2", BusinessName: "Gülüş Diş Kliniği", Sector: "dentist", Title: "Sağlıklı gülüşler", Headlines: []string{"Tedavilerimiz", "Kahve lekesi beyazlatma"}, PublishedAt: base.Add(time.Hour)},
		{ID: "p3", BusinessName: "Kuaför Elif", Sector: "beauty_salon", Title: "Yeni bir görünüm", Headlines: []string{"Hizmetlerimiz"}, PublishedAt: base.Add(2 * time.Hour)},
	} {
		require.NoError(t, m.IndexSite(rec))
	}
	return m
}

func TestMemorySearchRanksBusinessNameFirst(t *testing.T) {
	m := seededMemory(t)
	results, total, err := m.Search(Query{Text: "kahve"})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	assert.Equal(t, "p1", results[0].ID, "business name hit outranks headline hit")
	assert.Equal(t, "p2", results[1].ID)
	assert.Equal(t, "Tedavilerimiz · Kahve lekesi beyazlatma", results[1].Snippet)
}

func TestMemorySearchFoldsDiacritics(t *testing.T) {
	m := seededMemory(t)
	results, _, err := m.Search(Query{Text: "KUAFOR elif"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p3", results[0].ID)

	results, _, err = m.Search(Query{Text: "gulus"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)
}

func TestMemorySearchFiltersAndPages(t *testing.T) {
	m := seededMemory(t)
	results, total, err := m.Search(Query{Sector: "dentist"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "p2", results[0].ID)

	results, total, err = m.Search(Query{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].ID, "empty query orders by publish time")

	require.NoError(t, m.DeleteSite("p1"))
	_, total, _ = m.Search(Query{})
	assert.Equal(t, 2, total)
}

func TestRecordFromSections(t *testing.T) {
	rec := RecordFromSections("p9", []section.Instance{
		{ID: "a", Type: "HeroCentered", Props: section.Props{"title": "Merhaba", "badge": "Kahve Durağı", section.SectorField: "cafe"}},
		{ID: "b", Type: "ServicesGrid", Props: section.Props{"sectionTitle": "Menümüz"}},
		{ID: "c", Type: "FAQAccordion", Props: section.Props{"sectionTitle": ""}},
		{ID: "d", Type: section.FooterType, Props: section.Props{"businessName": "Other", "title": "ignored"}},
	})
	assert.Equal(t, "p9", rec.ID)
	assert.Equal(t, "Kahve Durağı", rec.BusinessName)
	assert.Equal(t, "cafe", rec.Sector)
	assert.Equal(t, "Merhaba", rec.Title)
	assert.Equal(t, []string{"Menümüz"}, rec.Headlines)
}

func TestServiceFallsBackToMemory(t *testing.T) {
	svc := NewService(nil, nil, nil)
	assert.Equal(t, "memory", svc.Backend())
	svc.IndexSite(SiteRecord{ID: "p1", BusinessName: "Kahve Durağı", Sector: "cafe"})

	resp := svc.Search(Query{Text: "durağı"})
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "durağı", resp.Query)

	svc.DeleteSite("p1")
	resp = svc.Search(Query{Text: "durağı"})
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestPgFTSIndexAndSearch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	p := NewPgFTS(db)
	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO published_sites")).
		WithArgs("p1", "Kahve Durağı", "cafe", "Merhaba", "Menümüz\nGaleri", "abc1234", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, p.IndexSite(SiteRecord{
		ID: "p1", BusinessName: "Kahve Durağı", Sector: "cafe", Title: "Merhaba",
		Headlines: []string{"Menümüz", "Galeri"}, CommitHash: "abc1234", PublishedAt: at,
	}))

	mock.ExpectQuery(regexp.QuoteMeta("FROM published_sites s")).
		WithArgs("kahve", "cafe", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "business_name", "sector", "title", "snippet", "total"}).
			AddRow("p1", "Kahve Durağı", "cafe", "Merhaba", "Menümüz", 1))
	results, total, err := p.Search(Query{Text: "kahve", Sector: "cafe"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Kahve Durağı", results[0].BusinessName)

	results, total, err = p.Search(Query{Text: "   "})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, total)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT project_id, business_name, sector, title, headlines, commit_hash, published_at")).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "business_name", "sector", "title", "headlines", "commit_hash", "published_at"}).
			AddRow("p1", "Kahve Durağı", "cafe", "Merhaba", "Menümüz\nGaleri", "abc1234", at))
	svc := NewService(nil, p, nil)
	svc.Reindex(t.Context())
	hits, _, _ := svc.fallback.Search(Query{Text: "galeri"})
	require.Len(t, hits, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeiliSearchAgainstStubServer(t *testing.T) {
	var searchBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/health":
			_, _ = io.WriteString(w, `{"status":"available"}`)
		case r.URL.Path == "/multi-search":
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &searchBody)
			_, _ = io.WriteString(w, `{"results":[{"indexUid":"vitrin_sites","hits":[
				{"id":"p1","businessName":"Kahve Durağı","sector":"cafe","title":"Merhaba","headlines":["Menümüz","Galeri"],
				 "_formatted":{"businessName":"<mark>Kahve</mark> Durağı","title":"Merhaba"}}],
				"estimatedTotalHits":1,"query":"kahve","limit":20,"offset":0,"processingTimeMs":1}]}`)
		default:
			w.WriteHeader(http.StatusAccepted)
			_, _ = io.WriteString(w, `{"taskUid":1,"indexUid":"vitrin_sites","status":"enqueued","type":"settingsUpdate","enqueuedAt":"2026-01-01T00:00:00Z"}`)
		}
	}))
	defer srv.Close()

	m := NewMeili(srv.URL, "key", nil)
	defer m.Close()
	require.True(t, m.Healthy())

	results, total, err := m.Search(Query{Text: "kahve", Sector: "cafe"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "<mark>Kahve</mark> Durağı", results[0].BusinessName)
	assert.Equal(t, "Menümüz · Galeri", results[0].Snippet)

	queries, _ := searchBody["queries"].([]any)
	require.Len(t, queries, 1)
	first := queries[0].(map[string]any)
	assert.Equal(t, "kahve", first["q"])
	assert.True(t, strings.Contains(first["filter"].([]any)[0].(string), "cafe"))

	svc := NewService(m, nil, nil)
	assert.Equal(t, "meilisearch", svc.Backend())
}

func TestMeiliUnavailableIsUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	m := NewMeili(srv.URL, "", nil)
	defer m.Close()
	assert.False(t, m.Healthy())
	_, _, err := m.Search(Query{Text: "x"})
	assert.Error(t, err)

	svc := NewService(m, nil, nil)
	svc.IndexSite(SiteRecord{ID: "p1", BusinessName: "Yedek"})
	assert.Equal(t, 1, svc.Search(Query{Text: "yedek"}).Total)
}
