package domain

import (
	"context"
	"time"
)

// BackendPort is the durable storage seam for stories
// implementations must make ReportView idempotent per (story, viewer)
type BackendPort interface {
	FetchAll(ctx context.Context) ([]FeedEntry, error)
	Create(ctx context.Context, s Story) error
	Delete(ctx context.Context, storyID string) error
	ReportView(ctx context.Context, storyID, viewerID string, at time.Time) error
}

// SinkPort appends advisory view events for analytics
type SinkPort interface {
	Append(ctx context.Context, ev ViewEvent) error
}

// ServicePort is the story workflow surface the transport mounts
type ServicePort interface {
	Compose(ctx context.Context, viewer Identity, in DraftInput) (Story, error)
	Refresh(ctx context.Context) error
	Delete(ctx context.Context, viewer Identity, storyID string) error
	Feed(ctx context.Context, viewer Identity) []FeedAuthor
	ActiveStories(ctx context.Context, authorID string) []Story
	View(ctx context.Context, viewer Identity, storyID string)
	Dashboard(ctx context.Context, viewer Identity) []DashboardStory
}
