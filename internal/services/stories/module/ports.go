package module

import (
	"context"

	storiesdom "storydeck/internal/services/stories/domain"
	storiessvc "storydeck/internal/services/stories/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStoriesPort adapts the stories service to the domain port interface
type adaptStoriesPort struct{ svc storiessvc.Service }

// Compose implements the domain ServicePort interface
func (a adaptStoriesPort) Compose(ctx context.Context, viewer storiesdom.Identity, in storiesdom.DraftInput) (storiesdom.Story, error) {
	return a.svc.Compose(ctx, viewer, in)
}

// Refresh implements the domain ServicePort interface
func (a adaptStoriesPort) Refresh(ctx context.Context) error { return a.svc.Refresh(ctx) }

// Delete implements the domain ServicePort interface
func (a adaptStoriesPort) Delete(ctx context.Context, viewer storiesdom.Identity, storyID string) error {
	return a.svc.Delete(ctx, viewer, storyID)
}

// Feed implements the domain ServicePort interface
func (a adaptStoriesPort) Feed(ctx context.Context, viewer storiesdom.Identity) []storiesdom.FeedAuthor {
	return a.svc.Feed(ctx, viewer)
}

// ActiveStories implements the domain ServicePort interface
func (a adaptStoriesPort) ActiveStories(ctx context.Context, authorID string) []storiesdom.Story {
	return a.svc.ActiveStories(ctx, authorID)
}

// View implements the domain ServicePort interface
func (a adaptStoriesPort) View(ctx context.Context, viewer storiesdom.Identity, storyID string) {
	a.svc.View(ctx, viewer, storyID)
}

// Dashboard implements the domain ServicePort interface
func (a adaptStoriesPort) Dashboard(ctx context.Context, viewer storiesdom.Identity) []storiesdom.DashboardStory {
	return a.svc.Dashboard(ctx, viewer)
}
