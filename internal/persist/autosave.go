package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vitrin/api/internal/section"
)

const DefaultInterval = 1500 * time.Millisecond

// Autosaver debounces document changes into sink writes. Observe records the
// latest state and (re)starts the timer; Flush writes immediately. A failed
// write is logged and the document stays dirty until a later flush succeeds.
type Autosaver struct {
	sink       Sink
	documentID string
	interval   time.Duration
	logger     *slog.Logger
	now        func() time.Time

	mu          sync.Mutex
	timer       *time.Timer
	pending     *Record
	pendingKey  string
	lastFlushed string
	dirty       bool
	inFlight    bool
	closed      bool

	// flushMu keeps at most one Save in flight per document.
	flushMu sync.Mutex
}

type AutosaveOption func(*Autosaver)

func WithInterval(d time.Duration) AutosaveOption {
	return func(a *Autosaver) {
		if d > 0 {
			a.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) AutosaveOption {
	return func(a *Autosaver) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithClock(now func() time.Time) AutosaveOption {
	return func(a *Autosaver) { a.now = now }
}

func NewAutosaver(sink Sink, documentID string, opts ...AutosaveOption) *Autosaver {
	a := &Autosaver{
		sink:       sink,
		documentID: documentID,
		interval:   DefaultInterval,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MarkClean declares sections/theme as already persisted, e.g. right after a load.
func (a *Autosaver) MarkClean(sections []section.Instance, theme section.Theme) {
	key, err := Fingerprint(sections, theme)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastFlushed = key
	if a.pending == nil {
		a.dirty = false
	}
}

// Observe records the current document. Returning to the last flushed state
// cancels the pending write.
func (a *Autosaver) Observe(sections []section.Instance, theme section.Theme) {
	key, err := Fingerprint(sections, theme)
	if err != nil {
		a.logger.Warn("autosave fingerprint failed", "document_id", a.documentID, "error", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if key == a.lastFlushed && !a.inFlight {
		a.stopTimerLocked()
		a.pending = nil
		a.pendingKey = ""
		a.dirty = false
		return
	}
	a.pending = &Record{
		DocumentID: a.documentID,
		Sections:   section.CloneInstances(sections),
		Theme:      theme.Clone(),
	}
	a.pendingKey = key
	a.dirty = true
	a.stopTimerLocked()
	a.timer = time.AfterFunc(a.interval, func() {
		_ = a.Flush(context.Background())
	})
}

// Flush cancels the timer and writes the pending state, waiting for the sink.
// It returns nil when nothing is pending.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.flushMu.Lock()
	defer a.flushMu.Unlock()

	a.mu.Lock()
	a.stopTimerLocked()
	rec, key := a.pending, a.pendingKey
	if rec == nil {
		a.mu.Unlock()
		return nil
	}
	a.pending = nil
	a.pendingKey = ""
	a.inFlight = true
	a.mu.Unlock()

	rec.UpdatedAt = a.now().UTC()
	err := a.sink.Save(ctx, *rec)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.inFlight = false
	if err != nil {
		a.logger.Warn("autosave failed", "document_id", a.documentID, "error", err)
		// Keep the failed state for retry unless a newer one arrived meanwhile.
		if a.pending == nil {
			a.pending = rec
			a.pendingKey = key
		}
		a.dirty = true
		return err
	}
	a.lastFlushed = key
	a.dirty = a.pending != nil
	a.logger.Debug("autosaved", "document_id", a.documentID, "sections", len(rec.Sections))
	return nil
}

// Dirty reports whether observed changes have not reached the sink yet.
func (a *Autosaver) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

// Close flushes what is pending and stops accepting observations.
func (a *Autosaver) Close(ctx context.Context) error {
	err := a.Flush(ctx)
	a.mu.Lock()
	a.closed = true
	a.stopTimerLocked()
	a.mu.Unlock()
	return err
}

func (a *Autosaver) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
