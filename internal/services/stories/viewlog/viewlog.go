// Package viewlog streams view events into clickhouse for analytics
package viewlog

import (
	"context"

	perr "storydeck/internal/platform/errors"
	"storydeck/internal/platform/logger"
	"storydeck/internal/platform/store"
	"storydeck/internal/services/stories/domain"
)

// table holds one immutable row per reported view; repeats are fine,
// readers dedupe with uniqExact
const table = "story_view_events"

// Sink writes view events to clickhouse
// a nil clickhouse seam turns every write into a no-op
type Sink struct {
	ch  store.Clickhouse
	log logger.Logger
}

// New returns a sink over the given clickhouse seam; ch may be nil
func New(ch store.Clickhouse, log logger.Logger) *Sink {
	return &Sink{ch: ch, log: log}
}

// Append records one view event
func (s *Sink) Append(ctx context.Context, ev domain.ViewEvent) error {
	if s == nil || s.ch == nil {
		return nil
	}
	err := s.ch.Insert(ctx, table, [][]any{
		{ev.StoryID, ev.ViewerID, ev.AuthorID, ev.ViewedAt},
	})
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "append view event")
	}
	return nil
}

// Counts returns distinct-viewer counts for the given stories
// stories with no events are absent from the map
func (s *Sink) Counts(ctx context.Context, storyIDs []string) (map[string]uint64, error) {
	if s == nil || s.ch == nil || len(storyIDs) == 0 {
		return map[string]uint64{}, nil
	}
	rows, err := s.ch.Query(ctx, `
		SELECT story_id, uniqExact(viewer_id)
		FROM story_view_events
		WHERE story_id IN ($1)
		GROUP BY story_id`, storyIDs)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "query view counts")
	}
	defer rows.Close()

	out := make(map[string]uint64, len(storyIDs))
	for rows.Next() {
		var id string
		var n uint64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan view count")
		}
		out[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate view counts")
	}
	return out, nil
}

var _ domain.SinkPort = (*Sink)(nil)
