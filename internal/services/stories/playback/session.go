// Package playback drives sequential story viewing with an auto-advancing timer
package playback

import (
	"context"
	"sync"
	"time"

	"storydeck/internal/platform/clock"
	"storydeck/internal/services/stories/domain"
)

// State names the session lifecycle
type State int

// Session states
const (
	// StateIdle means the snapshot was empty; the session never plays
	StateIdle State = iota
	// StatePlaying means a slide is on screen with progress ticking
	StatePlaying
	// StateDone means the last slide finished
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// progress runs 0..100 in fixed steps so each slide lasts SlideDuration
const progressSteps = 100

// DefaultSlideDuration is how long one slide stays up, independent of story TTL
const DefaultSlideDuration = 5 * time.Second

// Tracker is the view-state seam the session drives on slide entry
type Tracker interface {
	MarkSeen(storyID string)
	Report(ctx context.Context, story domain.Story, viewer domain.Identity, at time.Time)
}

// Options tune a session
type Options struct {
	// SlideDuration is the full on-screen time of one slide; zero means DefaultSlideDuration
	SlideDuration time.Duration
	// OnExit fires once when the session ends on its own (empty snapshot or Done)
	OnExit func()
}

// Status is a read-only snapshot of the session
type Status struct {
	State    State
	Index    int
	Progress int // 0..100, meaningful while playing
	Slides   int
}

// Session plays one author's active stories for one viewer
// the story snapshot is fixed at construction; feed changes never reach a running session
type Session struct {
	mu      sync.Mutex
	stories []domain.Story
	viewer  domain.Identity
	clk     clock.Clock
	trk     Tracker
	onExit  func()
	slide   time.Duration

	state    State
	index    int
	progress int

	timer   clock.Handle
	gen     uint64 // arm generation; stale ticks compare and bail
	entered map[int]struct{}
	closed  bool
	exited  bool
}

// NewSession builds a session over a snapshot of stories
// the slice is copied; callers may reuse theirs
func NewSession(stories []domain.Story, viewer domain.Identity, clk clock.Clock, trk Tracker, opt Options) *Session {
	if opt.SlideDuration <= 0 {
		opt.SlideDuration = DefaultSlideDuration
	}
	snap := make([]domain.Story, 0, len(stories))
	for _, s := range stories {
		snap = append(snap, s.Clone())
	}
	return &Session{
		stories: snap,
		viewer:  viewer,
		clk:     clk,
		trk:     trk,
		onExit:  opt.OnExit,
		slide:   opt.SlideDuration,
		state:   StateIdle,
		entered: map[int]struct{}{},
	}
}

// Start begins playback at the first slide
// an empty snapshot stays Idle and fires the exit callback immediately
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != StateIdle || s.exited {
		return
	}
	if len(s.stories) == 0 {
		s.fireExitLocked()
		return
	}
	s.enterLocked(0)
}

// Advance jumps to the next slide, or finishes from the last one
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != StatePlaying {
		return
	}
	s.cancelTimerLocked()
	s.nextLocked()
}

// Rewind steps back one slide, clamping at the first
// rewinding the first slide just restarts its progress
func (s *Session) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != StatePlaying {
		return
	}
	s.cancelTimerLocked()
	i := s.index
	if i > 0 {
		i--
	}
	s.enterLocked(i)
}

// Close tears the session down and cancels any armed timer synchronously
// safe to call more than once; ticks that lost the race become no-ops
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelTimerLocked()
}

// Status reports the current state for transports and tests
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{State: s.state, Index: s.index, Progress: s.progress, Slides: len(s.stories)}
}

// Stories exposes the immutable snapshot the session plays
func (s *Session) Stories() []domain.Story {
	out := make([]domain.Story, 0, len(s.stories))
	for _, st := range s.stories {
		out = append(out, st.Clone())
	}
	return out
}

// enterLocked puts slide i on screen and arms the first tick
// the per-index guard keeps the entry effect to exactly one firing per slide
func (s *Session) enterLocked(i int) {
	s.state = StatePlaying
	s.index = i
	s.progress = 0

	if _, done := s.entered[i]; !done {
		s.entered[i] = struct{}{}
		story := s.stories[i]
		s.trk.MarkSeen(story.ID)
		s.trk.Report(context.Background(), story, s.viewer, s.clk.Now())
	}
	s.armLocked()
}

// nextLocked advances past the current slide
func (s *Session) nextLocked() {
	if s.index+1 < len(s.stories) {
		s.enterLocked(s.index + 1)
		return
	}
	s.state = StateDone
	s.fireExitLocked()
}

func (s *Session) armLocked() {
	s.gen++
	g := s.gen
	step := s.slide / progressSteps
	s.timer = s.clk.Schedule(step, func() { s.tick(g) })
}

func (s *Session) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// tick moves progress one step; a generation mismatch means the timer
// lost a cancel race and must not touch anything
func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != StatePlaying || gen != s.gen {
		return
	}
	s.progress++
	if s.progress >= progressSteps {
		s.nextLocked()
		return
	}
	s.armLocked()
}

func (s *Session) fireExitLocked() {
	if s.exited {
		return
	}
	s.exited = true
	if s.onExit != nil {
		s.onExit()
	}
}
