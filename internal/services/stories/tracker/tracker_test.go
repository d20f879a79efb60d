package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storydeck/internal/platform/logger"
	"storydeck/internal/services/stories/domain"
)

type recordingBackend struct {
	mu    sync.Mutex
	calls []string // "storyID/viewerID"
	err   error
}

func (b *recordingBackend) ReportView(_ context.Context, storyID, viewerID string, _ time.Time) error {
	b.mu.Lock()
	b.calls = append(b.calls, storyID+"/"+viewerID)
	b.mu.Unlock()
	return b.err
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.ViewEvent
}

func (s *recordingSink) Append(_ context.Context, ev domain.ViewEvent) error {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	return nil
}

func syncTracker(backend Backend, sink domain.SinkPort) *Tracker {
	t := New(backend, sink, *logger.Named("test"))
	t.SetSpawn(func(fn func()) { fn() })
	return t
}

func TestMarkSeen_Idempotent(t *testing.T) {
	t.Parallel()

	trk := syncTracker(nil, nil)
	if trk.Seen("s1") {
		t.Fatalf("fresh tracker claims s1 seen")
	}
	trk.MarkSeen("s1")
	trk.MarkSeen("s1")
	if !trk.Seen("s1") {
		t.Fatalf("s1 not seen after MarkSeen")
	}
	if trk.Seen("s2") {
		t.Fatalf("s2 seen without marking")
	}
}

func TestReport_RefusesSelfView(t *testing.T) {
	t.Parallel()

	b := &recordingBackend{}
	trk := syncTracker(b, nil)
	story := domain.Story{ID: "s1", AuthorID: "ana"}

	trk.Report(context.Background(), story, domain.Identity{ID: "ana"}, time.Now())
	trk.Report(context.Background(), story, domain.Identity{}, time.Now())

	if len(b.calls) != 0 {
		t.Fatalf("self/anonymous views were reported: %v", b.calls)
	}
}

func TestReport_SendsBackendAndSink(t *testing.T) {
	t.Parallel()

	b := &recordingBackend{}
	s := &recordingSink{}
	trk := syncTracker(b, s)
	story := domain.Story{ID: "s1", AuthorID: "ana"}
	at := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	trk.Report(context.Background(), story, domain.Identity{ID: "bob"}, at)

	if len(b.calls) != 1 || b.calls[0] != "s1/bob" {
		t.Fatalf("backend calls = %v, want [s1/bob]", b.calls)
	}
	if len(s.events) != 1 || s.events[0].AuthorID != "ana" || !s.events[0].ViewedAt.Equal(at) {
		t.Fatalf("sink events = %v", s.events)
	}
}

func TestReport_BackendFailureStillFeedsSink(t *testing.T) {
	t.Parallel()

	b := &recordingBackend{err: errors.New("pg down")}
	s := &recordingSink{}
	trk := syncTracker(b, s)
	story := domain.Story{ID: "s1", AuthorID: "ana"}

	// must not panic or surface the error anywhere
	trk.Report(context.Background(), story, domain.Identity{ID: "bob"}, time.Now())

	if len(s.events) != 1 {
		t.Fatalf("sink skipped after backend failure: %d events", len(s.events))
	}
}

func TestReport_SurvivesCancelledContext(t *testing.T) {
	t.Parallel()

	b := &recordingBackend{}
	trk := syncTracker(b, nil)
	story := domain.Story{ID: "s1", AuthorID: "ana"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	trk.Report(ctx, story, domain.Identity{ID: "bob"}, time.Now())

	if len(b.calls) != 1 {
		t.Fatalf("report did not run after caller cancelled: %v", b.calls)
	}
}
