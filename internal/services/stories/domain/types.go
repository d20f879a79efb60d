// Package domain holds story types and contracts shared by feed, playback, and transport
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the acting user, supplied by the transport from trusted headers
type Identity struct {
	ID   string
	Name string
}

// View records one viewer of a story
// the viewers list on a story is ordered, unique by viewer id, and never contains the author
type View struct {
	ViewerID string    `json:"viewer_id"`
	ViewedAt time.Time `json:"viewed_at"`
}

// Story is a short lived text post
// ExpiresAt is always CreatedAt plus the chosen lifetime, derived at creation and never stored separately
type Story struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Text       string     `json:"text"`
	Background Background `json:"background"`
	Font       Font       `json:"font"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	Viewers    []View     `json:"viewers,omitempty"`
}

// NewStory mints a story for author at now with a derived expiry
func NewStory(author Identity, text string, bg Background, f Font, ttl TTL, now time.Time) Story {
	return Story{
		ID:         uuid.NewString(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
		Background: bg,
		Font:       f,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl.Duration()),
	}
}

// Active reports whether the story is still visible at now
// the boundary is strict: a story whose expiry equals now is gone
func (s Story) Active(now time.Time) bool { return now.Before(s.ExpiresAt) }

// SeenBy reports whether viewerID appears in the viewers list
func (s Story) SeenBy(viewerID string) bool {
	for _, v := range s.Viewers {
		if v.ViewerID == viewerID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold snapshots safely
func (s Story) Clone() Story {
	out := s
	if s.Viewers != nil {
		out.Viewers = append([]View(nil), s.Viewers...)
	}
	return out
}

// FeedEntry groups one author's stories in ascending creation order
type FeedEntry struct {
	AuthorID   string  `json:"author_id"`
	AuthorName string  `json:"author_name"`
	Stories    []Story `json:"stories"`
}

// ViewEvent is the advisory analytics record of one view
type ViewEvent struct {
	StoryID  string
	ViewerID string
	AuthorID string
	ViewedAt time.Time
}
