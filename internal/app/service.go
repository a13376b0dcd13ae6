package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"golang.org/x/sync/singleflight"

	"vitrin/api/internal/content"
	"vitrin/api/internal/editor"
	"vitrin/api/internal/gitrepo"
	"vitrin/api/internal/persist"
	"vitrin/api/internal/project"
	"vitrin/api/internal/search"
	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
	"vitrin/api/internal/templates"
	"vitrin/api/internal/util"
)

// Publisher records published documents. *gitrepo.Service implements it.
type Publisher interface {
	Publish(projectID string, rec persist.Record, author, message string) (gitrepo.Publication, error)
	History(projectID string, limit int) ([]gitrepo.Publication, error)
	GetByHash(projectID, hash string) (persist.Record, gitrepo.Publication, error)
	Tag(projectID, hash, name string) error
}

// SiteIndex is the site directory. *search.Service implements it.
type SiteIndex interface {
	IndexSite(rec search.SiteRecord)
	Search(q search.Query) search.Response
	Backend() string
}

// Pinger is a backend the readiness check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RecentFunc lists recently edited project ids, newest first.
type RecentFunc func(ctx context.Context, limit int) ([]string, error)

type Deps struct {
	Store            persist.Store
	Publisher        Publisher
	Search           SiteIndex
	Templates        *templates.Catalog
	Pipeline         *content.Pipeline
	Injector         editor.Injector
	Registry         *section.Registry
	Checks           map[string]Pinger
	Recent           RecentFunc
	AutosaveInterval time.Duration
	// MaxSessions bounds the projects held in memory; 0 means DefaultMaxSessions.
	MaxSessions int
	Logger      *slog.Logger
}

// Service owns one editing session per project. Sessions are created lazily
// from the document store; the least recently used ones are flushed and
// dropped once MaxSessions is reached or they sit idle.
type Service struct {
	deps   Deps
	logger *slog.Logger
	now    func() time.Time

	loads singleflight.Group

	mu       sync.Mutex
	sessions *simplelru.LRU[string, *projectSession]
	retiring map[string]*projectSession
	evicted  []*projectSession
}

func New(deps Deps) (*Service, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if deps.Templates == nil {
		catalog, err := templates.Default()
		if err != nil {
			return nil, fmt.Errorf("load template catalog: %w", err)
		}
		deps.Templates = catalog
	}
	if deps.Pipeline == nil {
		deps.Pipeline = content.DefaultPipeline()
	}
	if deps.Registry == nil {
		deps.Registry = section.DefaultRegistry()
	}
	if deps.Search == nil {
		deps.Search = search.NewService(nil, nil, deps.Logger)
	}
	if deps.AutosaveInterval <= 0 {
		deps.AutosaveInterval = persist.DefaultInterval
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.MaxSessions <= 0 {
		deps.MaxSessions = DefaultMaxSessions
	}
	svc := &Service{
		deps:     deps,
		logger:   logger,
		now:      time.Now,
		retiring: make(map[string]*projectSession),
	}
	sessions, err := simplelru.NewLRU[string, *projectSession](deps.MaxSessions, svc.onEvict)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	svc.sessions = sessions
	return svc, nil
}

// observe hands the current document to the autosaver. Callers hold sess.mu.
func (sess *projectSession) observe() {
	doc := sess.editor.Document()
	sess.autosave.Observe(doc.Sections, doc.Theme)
}

func (s *Service) Document(ctx context.Context, projectID string) (DocumentView, error) {
	sess, err := s.acquire(ctx, projectID)
	if err != nil {
		return DocumentView{}, err
	}
	defer sess.mu.Unlock()
	return s.view(projectID, sess), nil
}

// Execute applies one editor command. The returned id is the section created
// by addSection, duplicateSection or toggleAddable, if any.
func (s *Service) Execute(ctx context.Context, projectID string, cmd CommandRequest) (DocumentView, string, error) {
	if err := cmd.Validate(); err != nil {
		return DocumentView{}, "", err
	}
	sess, err := s.acquire(ctx, projectID)
	if err != nil {
		return DocumentView{}, "", err
	}
	defer sess.mu.Unlock()

	created := cmd.apply(sess.editor)
	if cmd.mutatesContent() {
		sess.observe()
	}
	return s.view(projectID, sess), created, nil
}

// ApplyTemplate rebuilds the project's document from templateID. It reports
// applied=false and leaves the document untouched for unknown templates.
func (s *Service) ApplyTemplate(ctx context.Context, projectID, templateID string, data project.Data) (DocumentView, bool, error) {
	sess, err := s.acquire(ctx, projectID)
	if err != nil {
		return DocumentView{}, false, err
	}
	defer sess.mu.Unlock()

	applied := sess.editor.ApplyTemplate(templateID, data)
	if applied {
		sess.observe()
	}
	return s.view(projectID, sess), applied, nil
}

func (s *Service) Undo(ctx context.Context, projectID string) (DocumentView, bool, error) {
	sess, err := s.acquire(ctx, projectID)
	if err != nil {
		return DocumentView{}, false, err
	}
	defer sess.mu.Unlock()

	undone := sess.editor.Undo()
	if undone {
		sess.observe()
	}
	return s.view(projectID, sess), undone, nil
}

// Publish force-flushes the draft, commits it as a publication and updates
// the site directory. A failed flush aborts the publish.
func (s *Service) Publish(ctx context.Context, projectID, author, message string) (gitrepo.Publication, error) {
	if s.deps.Publisher == nil {
		return gitrepo.Publication{}, domainError(http.StatusServiceUnavailable, "PUBLISH_UNAVAILABLE", "Publishing is not configured", nil)
	}
	sess, err := s.acquire(ctx, projectID)
	if err != nil {
		return gitrepo.Publication{}, err
	}
	defer sess.mu.Unlock()

	doc := sess.editor.Document()
	if len(doc.Sections) == 0 {
		return gitrepo.Publication{}, validationError("cannot publish an empty document", nil)
	}
	if err := sess.autosave.Flush(ctx); err != nil {
		return gitrepo.Publication{}, domainError(http.StatusServiceUnavailable, "SAVE_FAILED", "Could not save document before publishing", nil)
	}

	rec := persist.Record{DocumentID: projectID, Sections: doc.Sections, Theme: doc.Theme, UpdatedAt: s.now().UTC()}
	pub, err := s.deps.Publisher.Publish(projectID, rec, author, message)
	if err != nil {
		return gitrepo.Publication{}, fmt.Errorf("publish %s: %w", projectID, err)
	}

	site := search.RecordFromSections(projectID, doc.Sections)
	site.CommitHash = pub.Hash
	site.PublishedAt = pub.PublishedAt
	s.deps.Search.IndexSite(site)

	s.logger.Info("site published", "project_id", projectID, "hash", pub.Hash, "unchanged", pub.Unchanged)
	return pub, nil
}

func (s *Service) Publications(_ context.Context, projectID string, limit int) ([]gitrepo.Publication, error) {
	if !util.ValidID(projectID) {
		return nil, validationError("invalid project id", nil)
	}
	if s.deps.Publisher == nil {
		return []gitrepo.Publication{}, nil
	}
	pubs, err := s.deps.Publisher.History(projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("publication history %s: %w", projectID, err)
	}
	return pubs, nil
}

func (s *Service) Publication(_ context.Context, projectID, hash string) (persist.Record, gitrepo.Publication, error) {
	if !util.ValidID(projectID) {
		return persist.Record{}, gitrepo.Publication{}, validationError("invalid project id", nil)
	}
	if s.deps.Publisher == nil {
		return persist.Record{}, gitrepo.Publication{}, gitrepo.ErrNotPublished
	}
	return s.deps.Publisher.GetByHash(projectID, hash)
}

func (s *Service) TagPublication(_ context.Context, projectID, hash, name string) error {
	if !util.ValidID(projectID) {
		return validationError("invalid project id", nil)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("tag name is required", nil)
	}
	if s.deps.Publisher == nil {
		return gitrepo.ErrNotPublished
	}
	return s.deps.Publisher.Tag(projectID, hash, name)
}

// Resolve runs the content pipeline for templateID without touching any
// document.
func (s *Service) Resolve(templateID string, data project.Data) ([]section.Spec, error) {
	def, ok := s.deps.Templates.Lookup(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}
	return s.deps.Pipeline.MapSections(def.Sections, data), nil
}

func (s *Service) Templates() []templates.Summary {
	return s.deps.Templates.List()
}

// SectorView is the answer to a sector key lookup.
type SectorView struct {
	Key       string          `json:"key"`
	Canonical string          `json:"canonical"`
	Found     bool            `json:"found"`
	Profile   *sector.Profile `json:"profile,omitempty"`
}

func (s *Service) ResolveSector(key string) SectorView {
	view := SectorView{Key: key, Canonical: sector.Canonical(key)}
	if p, ok := sector.Resolve(key); ok {
		view.Found = true
		view.Profile = &p
	}
	return view
}

func (s *Service) SearchSites(q search.Query) search.Response {
	if q.Sector != "" {
		q.Sector = sector.Canonical(q.Sector)
	}
	return s.deps.Search.Search(q)
}

func (s *Service) RecentProjects(ctx context.Context, limit int) ([]string, error) {
	if s.deps.Recent == nil {
		return []string{}, nil
	}
	ids, err := s.deps.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Ready probes every configured backend.
func (s *Service) Ready(ctx context.Context) (map[string]any, bool) {
	names := make([]string, 0, len(s.deps.Checks))
	for name := range s.deps.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ready := true
	checks := make(map[string]any, len(names)+1)
	for _, name := range names {
		if err := s.deps.Checks[name].Ping(ctx); err != nil {
			ready = false
			checks[name] = map[string]any{"status": "error", "error": err.Error()}
			continue
		}
		checks[name] = map[string]any{"status": "ok"}
	}
	checks["search"] = map[string]any{"status": "ok", "backend": s.deps.Search.Backend()}
	return checks, ready
}
