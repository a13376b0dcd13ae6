package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vitrin/api/internal/editor"
	"vitrin/api/internal/persist"
	"vitrin/api/internal/util"
)

// DefaultMaxSessions bounds the open editing sessions when Deps leaves it unset.
const DefaultMaxSessions = 1000

const retireTimeout = 10 * time.Second

type projectSession struct {
	id       string
	mu       sync.Mutex
	editor   *editor.Editor
	autosave *persist.Autosaver
	// retired is set under mu once the session has been flushed and dropped.
	retired bool
	drained chan struct{}
	// lastUsed is guarded by Service.mu.
	lastUsed time.Time
}

// acquire returns the project's session with sess.mu held. A session retired
// between lookup and lock is replaced by a fresh load.
func (s *Service) acquire(ctx context.Context, projectID string) (*projectSession, error) {
	for {
		sess, err := s.session(ctx, projectID)
		if err != nil {
			return nil, err
		}
		sess.mu.Lock()
		if !sess.retired {
			return sess, nil
		}
		sess.mu.Unlock()
	}
}

// session returns the live session for projectID, loading the stored
// document on first use. A project that was never saved starts empty.
// Store I/O happens outside s.mu; concurrent first uses share one load.
func (s *Service) session(ctx context.Context, projectID string) (*projectSession, error) {
	if !util.ValidID(projectID) {
		return nil, validationError("invalid project id", map[string]any{"projectId": projectID})
	}
	for {
		s.mu.Lock()
		if sess, ok := s.sessions.Get(projectID); ok {
			sess.lastUsed = s.now()
			s.mu.Unlock()
			return sess, nil
		}
		if old, ok := s.retiring[projectID]; ok {
			s.mu.Unlock()
			select {
			case <-old.drained:
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		s.mu.Unlock()

		v, err, _ := s.loads.Do(projectID, func() (any, error) {
			return s.open(ctx, projectID)
		})
		if errors.Is(err, errRetiring) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return v.(*projectSession), nil
	}
}

var errRetiring = errors.New("session is being retired")

// open loads projectID and registers its session. Only one open per id runs at
// a time, so the id cannot be cached and evicted again while the load runs.
func (s *Service) open(ctx context.Context, projectID string) (*projectSession, error) {
	s.mu.Lock()
	if sess, ok := s.sessions.Get(projectID); ok {
		s.mu.Unlock()
		return sess, nil
	}
	if _, ok := s.retiring[projectID]; ok {
		s.mu.Unlock()
		return nil, errRetiring
	}
	s.mu.Unlock()

	rec, err := s.deps.Store.Load(ctx, projectID)
	switch {
	case errors.Is(err, persist.ErrNotFound):
		rec = persist.Record{DocumentID: projectID}
	case err != nil:
		return nil, fmt.Errorf("load document %s: %w", projectID, err)
	}

	opts := []editor.Option{
		editor.WithTemplates(s.deps.Templates),
		editor.WithPipeline(s.deps.Pipeline),
	}
	if s.deps.Injector != nil {
		opts = append(opts, editor.WithInjector(s.deps.Injector))
	}
	sess := &projectSession{
		id:     projectID,
		editor: editor.New(editor.NewDocument(rec.Sections, rec.Theme), opts...),
		autosave: persist.NewAutosaver(s.deps.Store, projectID,
			persist.WithInterval(s.deps.AutosaveInterval),
			persist.WithLogger(s.logger),
		),
		drained: make(chan struct{}),
	}
	sess.autosave.MarkClean(rec.Sections, rec.Theme)

	s.mu.Lock()
	sess.lastUsed = s.now()
	s.sessions.Add(projectID, sess)
	evicted := s.takeEvictedLocked()
	s.mu.Unlock()

	s.retire(evicted)
	return sess, nil
}

// onEvict runs inside LRU calls, which are always made under s.mu.
func (s *Service) onEvict(projectID string, sess *projectSession) {
	s.retiring[projectID] = sess
	s.evicted = append(s.evicted, sess)
}

func (s *Service) takeEvictedLocked() []*projectSession {
	out := s.evicted
	s.evicted = nil
	return out
}

// retire flushes and closes evicted sessions. Requests for the same project
// wait on drained, then reload what was flushed.
func (s *Service) retire(sessions []*projectSession) {
	for _, sess := range sessions {
		ctx, cancel := context.WithTimeout(context.Background(), retireTimeout)
		sess.mu.Lock()
		sess.retired = true
		err := sess.autosave.Close(ctx)
		sess.mu.Unlock()
		cancel()
		if err != nil {
			s.logger.Error("evicted session lost unsaved changes", "project_id", sess.id, "error", err)
		} else {
			s.logger.Debug("session evicted", "project_id", sess.id)
		}

		s.mu.Lock()
		if s.retiring[sess.id] == sess {
			delete(s.retiring, sess.id)
		}
		s.mu.Unlock()
		close(sess.drained)
	}
}

// EvictIdle flushes and drops sessions unused for longer than maxIdle and
// returns how many it dropped.
func (s *Service) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	for _, id := range s.sessions.Keys() {
		sess, ok := s.sessions.Peek(id)
		if !ok {
			continue
		}
		// Keys are oldest first.
		if sess.lastUsed.After(cutoff) {
			break
		}
		s.sessions.Remove(id)
	}
	evicted := s.takeEvictedLocked()
	s.mu.Unlock()

	s.retire(evicted)
	return len(evicted)
}

// RunJanitor calls EvictIdle every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(maxIdle); n > 0 {
				s.logger.Info("idle sessions evicted", "count", n)
			}
		}
	}
}

// SessionCount reports how many project sessions are held in memory.
func (s *Service) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

// Close flushes every session. Errors are joined so one failing project does
// not keep the others from saving.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions.Values()
	s.mu.Unlock()

	var errs []error
	for _, sess := range sessions {
		sess.mu.Lock()
		if !sess.retired {
			if err := sess.autosave.Close(ctx); err != nil {
				errs = append(errs, fmt.Errorf("close session %s: %w", sess.id, err))
			}
		}
		sess.mu.Unlock()
	}
	return errors.Join(errs...)
}
