package viewlog

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "storydeck/internal/platform/errors"
	"storydeck/internal/platform/logger"
	"storydeck/internal/platform/store"
	"storydeck/internal/services/stories/domain"
)

type fakeCH struct {
	inserts [][]any
	table   string
	err     error
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	if f.err != nil {
		return f.err
	}
	f.table = table
	f.inserts = append(f.inserts, data.([][]any)...)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCH) Close() error { return nil }

func TestAppend_WritesOneRow(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{}
	s := New(ch, *logger.Named("test"))
	at := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	err := s.Append(context.Background(), domain.ViewEvent{
		StoryID: "s1", ViewerID: "bob", AuthorID: "ana", ViewedAt: at,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if ch.table != "story_view_events" {
		t.Fatalf("table = %q", ch.table)
	}
	if len(ch.inserts) != 1 {
		t.Fatalf("inserts = %d, want 1", len(ch.inserts))
	}
	row := ch.inserts[0]
	if row[0] != "s1" || row[1] != "bob" || row[2] != "ana" {
		t.Fatalf("row = %v", row)
	}
}

func TestAppend_NilSeamIsNoOp(t *testing.T) {
	t.Parallel()

	s := New(nil, *logger.Named("test"))
	if err := s.Append(context.Background(), domain.ViewEvent{StoryID: "s1"}); err != nil {
		t.Fatalf("nil seam returned error: %v", err)
	}
}

func TestAppend_WrapsTransportFailure(t *testing.T) {
	t.Parallel()

	s := New(&fakeCH{err: errors.New("ch down")}, *logger.Named("test"))
	err := s.Append(context.Background(), domain.ViewEvent{StoryID: "s1"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
