// Package tracker keeps two kinds of view state that must never merge:
// a local advisory seen-overlay and authoritative view reporting
package tracker

import (
	"context"
	"sync"
	"time"

	"storydeck/internal/platform/logger"
	"storydeck/internal/services/stories/domain"
)

// Backend is the authoritative reporting seam
// implementations are idempotent per (story, viewer)
type Backend interface {
	ReportView(ctx context.Context, storyID, viewerID string, at time.Time) error
}

// Tracker tracks seen stories for the running process
// the overlay is lost on restart by design; the authoritative record is not
type Tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}

	backend Backend        // nil disables reporting
	sink    domain.SinkPort // nil disables analytics
	log     logger.Logger

	// spawn runs reporting off the caller's path; tests swap it for a direct call
	spawn func(func())
}

// New returns a tracker; backend and sink may be nil
func New(backend Backend, sink domain.SinkPort, log logger.Logger) *Tracker {
	return &Tracker{
		seen:    make(map[string]struct{}),
		backend: backend,
		sink:    sink,
		log:     log,
		spawn:   func(fn func()) { go fn() },
	}
}

// MarkSeen records a story in the local overlay; repeat calls are no-ops
func (t *Tracker) MarkSeen(storyID string) {
	t.mu.Lock()
	t.seen[storyID] = struct{}{}
	t.mu.Unlock()
}

// Seen reports the local overlay only, never the authoritative record
func (t *Tracker) Seen(storyID string) bool {
	t.mu.Lock()
	_, ok := t.seen[storyID]
	t.mu.Unlock()
	return ok
}

// Report sends an authoritative view for viewer on story
// self-views are refused here no matter what the caller checked.
// The write is fire and forget: failures are logged and never surface
func (t *Tracker) Report(ctx context.Context, story domain.Story, viewer domain.Identity, at time.Time) {
	if viewer.ID == "" || viewer.ID == story.AuthorID {
		return
	}
	if t.backend == nil && t.sink == nil {
		return
	}

	// detach from the request lifecycle; the report outlives the caller
	ctx = context.WithoutCancel(ctx)
	t.spawn(func() {
		if t.backend != nil {
			if err := t.backend.ReportView(ctx, story.ID, viewer.ID, at); err != nil {
				t.log.Warn().Err(err).
					Str("story_id", story.ID).
					Str("viewer_id", viewer.ID).
					Msg("view report dropped")
			}
		}
		if t.sink != nil {
			ev := domain.ViewEvent{
				StoryID:  story.ID,
				ViewerID: viewer.ID,
				AuthorID: story.AuthorID,
				ViewedAt: at,
			}
			if err := t.sink.Append(ctx, ev); err != nil {
				t.log.Warn().Err(err).
					Str("story_id", story.ID).
					Msg("view event dropped")
			}
		}
	})
}

// SetSpawn overrides the goroutine seam, for tests that need determinism
func (t *Tracker) SetSpawn(fn func(func())) { t.spawn = fn }
