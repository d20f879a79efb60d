// Package service contains the story workflows
package service

import (
	"context"
	"time"

	"storydeck/internal/platform/clock"
	perr "storydeck/internal/platform/errors"
	"storydeck/internal/platform/logger"
	"storydeck/internal/services/stories/domain"
	"storydeck/internal/services/stories/feed"
	"storydeck/internal/services/stories/playback"
	"storydeck/internal/services/stories/tracker"
)

// Service defines the service contract for stories
type Service interface{ domain.ServicePort }

// CountsPort is the optional analytics read side; the sink may implement it
type CountsPort interface {
	Counts(ctx context.Context, storyIDs []string) (map[string]uint64, error)
}

// Options tune the service
type Options struct {
	// SlideDuration is the per-slide playback time; zero means the playback default
	SlideDuration time.Duration
}

// Svc implements the Service interface
// the backend and sink may be nil, which turns persistence into a local-only mode
type Svc struct {
	feed    *feed.Feed
	trk     *tracker.Tracker
	backend domain.BackendPort
	sink    domain.SinkPort
	clk     clock.Clock
	log     logger.Logger
	slide   time.Duration

	// spawn runs fire-and-forget persistence; tests swap it for a direct call
	spawn func(func())
}

// New creates a stories service over an already bound backend
func New(backend domain.BackendPort, sink domain.SinkPort, clk clock.Clock, log logger.Logger, opt Options) *Svc {
	if clk == nil {
		panic("stories.Service requires a non nil Clock")
	}
	return &Svc{
		feed:    feed.New(clk),
		trk:     tracker.New(backend, sink, log),
		backend: backend,
		sink:    sink,
		clk:     clk,
		log:     log,
		slide:   opt.SlideDuration,
		spawn:   func(fn func()) { go fn() },
	}
}

// Compose validates a draft and publishes it locally
// persistence happens off the caller's path; a storage failure never unpublishes
func (s *Svc) Compose(ctx context.Context, viewer domain.Identity, in domain.DraftInput) (domain.Story, error) {
	d, err := normalizeDraft(in)
	if err != nil {
		return domain.Story{}, err
	}

	story := s.feed.Create(viewer, d.text, d.bg, d.font, d.ttl)

	if s.backend != nil {
		ctx := context.WithoutCancel(ctx)
		s.spawn(func() {
			if err := s.backend.Create(ctx, story); err != nil {
				s.log.Warn().Err(err).Str("story_id", story.ID).Msg("story not persisted")
			}
		})
	}
	return story, nil
}

// Refresh replaces the local feed with the backend's view
// on failure the feed keeps its prior state
func (s *Svc) Refresh(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	entries, err := s.backend.FetchAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("feed refresh failed")
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "refresh feed")
	}
	s.feed.ReplaceAll(entries)
	return nil
}

// Delete removes one of the viewer's own stories
// the local delete is the gate; the backend delete follows asynchronously
func (s *Svc) Delete(ctx context.Context, viewer domain.Identity, storyID string) error {
	if err := s.feed.Delete(storyID, viewer.ID); err != nil {
		return err
	}
	if s.backend != nil {
		ctx := context.WithoutCancel(ctx)
		s.spawn(func() {
			if err := s.backend.Delete(ctx, storyID); err != nil {
				s.log.Warn().Err(err).Str("story_id", storyID).Msg("story delete not persisted")
			}
		})
	}
	return nil
}

// Feed lists authors with active stories and whether the viewer has unseen ones
func (s *Svc) Feed(_ context.Context, viewer domain.Identity) []domain.FeedAuthor {
	now := s.clk.Now()
	// the overlay covers this process; the persisted viewers list covers restarts
	seen := func(st domain.Story) bool {
		return s.trk.Seen(st.ID) || st.SeenBy(viewer.ID)
	}
	authors := s.feed.ActiveAuthors(now)
	out := make([]domain.FeedAuthor, 0, len(authors))
	for _, a := range authors {
		out = append(out, domain.FeedAuthor{
			AuthorID:   a.ID,
			AuthorName: a.Name,
			Unseen:     s.feed.HasUnseenActive(a.ID, now, seen),
			Stories:    len(s.feed.ActiveStories(a.ID, now)),
		})
	}
	return out
}

// ActiveStories returns authorID's unexpired stories in creation order
func (s *Svc) ActiveStories(_ context.Context, authorID string) []domain.Story {
	return s.feed.ActiveStories(authorID, s.clk.Now())
}

// View marks a story seen for this process and reports it when appropriate
// unknown ids, self-views, and repeats are all silent no-ops
func (s *Svc) View(ctx context.Context, viewer domain.Identity, storyID string) {
	s.trk.MarkSeen(storyID)
	if story, ok := s.feed.StoryByID(storyID); ok {
		s.trk.Report(ctx, story, viewer, s.clk.Now())
	}
}

// Dashboard lists the viewer's own active stories with distinct view counts
// counts prefer the durable viewers list; analytics only ever widen them
func (s *Svc) Dashboard(ctx context.Context, viewer domain.Identity) []domain.DashboardStory {
	stories := s.feed.ActiveStories(viewer.ID, s.clk.Now())

	var counts map[string]uint64
	if cp, ok := s.sink.(CountsPort); ok && len(stories) > 0 {
		ids := make([]string, 0, len(stories))
		for _, st := range stories {
			ids = append(ids, st.ID)
		}
		var err error
		if counts, err = cp.Counts(ctx, ids); err != nil {
			s.log.Warn().Err(err).Msg("view counts unavailable")
		}
	}

	out := make([]domain.DashboardStory, 0, len(stories))
	for _, st := range stories {
		n := uint64(len(st.Viewers))
		if c := counts[st.ID]; c > n {
			n = c
		}
		out = append(out, domain.DashboardStory{Story: st, UniqueViews: n})
	}
	return out
}

// Session builds a playback session over a snapshot of authorID's active stories
// onExit may be nil
func (s *Svc) Session(authorID string, viewer domain.Identity, onExit func()) *playback.Session {
	snap := s.feed.ActiveStories(authorID, s.clk.Now())
	return playback.NewSession(snap, viewer, s.clk, s.trk, playback.Options{
		SlideDuration: s.slide,
		OnExit:        onExit,
	})
}

// SetSpawn overrides the goroutine seam, for tests that need determinism
func (s *Svc) SetSpawn(fn func(func())) {
	s.spawn = fn
	s.trk.SetSpawn(fn)
}
