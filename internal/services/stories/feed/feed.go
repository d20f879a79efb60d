// Package feed holds the in-memory working set of stories grouped by author
package feed

import (
	"sync"
	"time"

	"storydeck/internal/platform/clock"
	perr "storydeck/internal/platform/errors"
	"storydeck/internal/services/stories/domain"
)

// Feed is the local story repository
// construct one per process and inject it; it is safe for concurrent use
type Feed struct {
	mu      sync.RWMutex
	clk     clock.Clock
	entries map[string]*domain.FeedEntry
	order   []string // author ids in first-seen order
}

// New returns an empty feed using clk for creation timestamps
func New(clk clock.Clock) *Feed {
	return &Feed{
		clk:     clk,
		entries: make(map[string]*domain.FeedEntry),
	}
}

// ReplaceAll swaps the working set for the given entries wholesale
// last writer wins; author order follows the slice
func (f *Feed) ReplaceAll(entries []domain.FeedEntry) {
	next := make(map[string]*domain.FeedEntry, len(entries))
	order := make([]string, 0, len(entries))
	for i := range entries {
		e := entries[i]
		if _, dup := next[e.AuthorID]; dup {
			continue
		}
		copied := domain.FeedEntry{
			AuthorID:   e.AuthorID,
			AuthorName: e.AuthorName,
			Stories:    make([]domain.Story, 0, len(e.Stories)),
		}
		for _, s := range e.Stories {
			copied.Stories = append(copied.Stories, s.Clone())
		}
		next[e.AuthorID] = &copied
		order = append(order, e.AuthorID)
	}

	f.mu.Lock()
	f.entries = next
	f.order = order
	f.mu.Unlock()
}

// Create mints a story for author and appends it to the author's entry
// stories are created in real time order so the per-author list stays sorted by construction
func (f *Feed) Create(author domain.Identity, text string, bg domain.Background, fo domain.Font, ttl domain.TTL) domain.Story {
	story := domain.NewStory(author, text, bg, fo, ttl, f.clk.Now())

	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[author.ID]
	if !ok {
		e = &domain.FeedEntry{AuthorID: author.ID, AuthorName: author.Name}
		f.entries[author.ID] = e
		f.order = append(f.order, author.ID)
	}
	e.Stories = append(e.Stories, story)
	return story.Clone()
}

// Delete removes a story owned by authorID
// a missing id or an author mismatch both come back as not found
func (f *Feed) Delete(storyID, authorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[authorID]
	if !ok {
		return perr.NotFoundf("story %s not found", storyID)
	}
	for i, s := range e.Stories {
		if s.ID != storyID {
			continue
		}
		e.Stories = append(e.Stories[:i], e.Stories[i+1:]...)
		if len(e.Stories) == 0 {
			delete(f.entries, authorID)
			f.dropOrderLocked(authorID)
		}
		return nil
	}
	return perr.NotFoundf("story %s not found", storyID)
}

// ActiveStories returns a snapshot of authorID's unexpired stories in creation order
// unknown authors yield an empty slice
func (f *Feed) ActiveStories(authorID string, now time.Time) []domain.Story {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := []domain.Story{}
	e, ok := f.entries[authorID]
	if !ok {
		return out
	}
	for _, s := range e.Stories {
		if s.Active(now) {
			out = append(out, s.Clone())
		}
	}
	return out
}

// ActiveAuthors returns authors with at least one unexpired story, in first-seen order
func (f *Feed) ActiveAuthors(now time.Time) []domain.Identity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []domain.Identity
	for _, id := range f.order {
		e, ok := f.entries[id]
		if !ok {
			continue
		}
		for _, s := range e.Stories {
			if s.Active(now) {
				out = append(out, domain.Identity{ID: e.AuthorID, Name: e.AuthorName})
				break
			}
		}
	}
	return out
}

// HasUnseenActive reports whether authorID has an unexpired story for which seen returns false
// the callback receives the story so callers can consult the persisted viewers list too
func (f *Feed) HasUnseenActive(authorID string, now time.Time, seen func(s domain.Story) bool) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	e, ok := f.entries[authorID]
	if !ok {
		return false
	}
	for _, s := range e.Stories {
		if s.Active(now) && !seen(s) {
			return true
		}
	}
	return false
}

// StoryByID looks a story up across all authors
func (f *Feed) StoryByID(id string) (domain.Story, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, e := range f.entries {
		for _, s := range e.Stories {
			if s.ID == id {
				return s.Clone(), true
			}
		}
	}
	return domain.Story{}, false
}

func (f *Feed) dropOrderLocked(authorID string) {
	for i, id := range f.order {
		if id == authorID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			return
		}
	}
}
