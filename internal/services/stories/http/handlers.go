// Package http provides http transport for stories
package http

import (
	stdhttp "net/http"
	"sync"

	"storydeck/internal/modkit/httpkit"
	perr "storydeck/internal/platform/errors"
	"storydeck/internal/platform/net/http/bind"
	"storydeck/internal/services/stories/domain"
	svc "storydeck/internal/services/stories/service"
)

var ttlTagOnce sync.Once

// registerTTLTag teaches the validator the closed lifetime set so bad
// ttl_ms values are rejected at the transport edge
func registerTTLTag() {
	ttlTagOnce.Do(func() {
		_ = bind.RegisterValidation("story_ttl", func(fl bind.FieldLevel) bool {
			_, ok := domain.TTLFromMillis(fl.Field().Int())
			return ok
		})
		bind.RegisterTranslation("story_ttl", "{0} must be a supported story lifetime")
	})
}

// Register mounts story endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	registerTTLTag()

	h := &handlers{svc: s}
	httpkit.Get(r, "/options", h.options)
	httpkit.Get(r, "/feed", h.feed)
	httpkit.Get(r, "/author", h.author)
	httpkit.Get(r, "/dashboard", h.dashboard)
	httpkit.PostJSON[domain.DraftInput](r, "/compose", h.compose)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.remove)
	httpkit.PostJSON[domain.ViewInput](r, "/view", h.view)
}

type handlers struct{ svc svc.Service }

func (h *handlers) identity(r *stdhttp.Request) (domain.Identity, error) {
	vid, err := httpkit.Viewer(r)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{ID: vid, Name: httpkit.ViewerName(r)}, nil
}

// @Summary Compose palette of backgrounds, fonts, and lifetimes
// @Tags Stories
// @Produce json
// @Success 200 {object} domain.ComposeOptions "ok"
// @Router /stories/options [get]
func (h *handlers) options(_ *stdhttp.Request) (any, error) {
	return domain.NewComposeOptions(), nil
}

// @Summary Authors with active stories
// @Tags Stories
// @Produce json
// @Success 200 {array} domain.FeedAuthor "ok"
// @Router /stories/feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	// opportunistic; a stale feed is better than a failed read
	_ = h.svc.Refresh(r.Context())
	return h.svc.Feed(r.Context(), viewer), nil
}

// @Summary One author's active stories in creation order
// @Tags Stories
// @Produce json
// @Param author_id query string true "Author id"
// @Success 200 {array} domain.Story "ok"
// @Router /stories/author [get]
func (h *handlers) author(r *stdhttp.Request) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	authorID := r.URL.Query().Get("author_id")
	if authorID == "" {
		return nil, perr.WithField(perr.InvalidArgf("author_id is required"), "author_id")
	}
	stories := h.svc.ActiveStories(r.Context(), authorID)
	if viewer.ID != authorID {
		// the viewers list is the author's business only
		for i := range stories {
			stories[i].Viewers = nil
		}
	}
	return stories, nil
}

// @Summary The viewer's own active stories with reach
// @Tags Stories
// @Produce json
// @Success 200 {array} domain.DashboardStory "ok"
// @Router /stories/dashboard [get]
func (h *handlers) dashboard(r *stdhttp.Request) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Dashboard(r.Context(), viewer), nil
}

// @Summary Publish a story
// @Tags Stories
// @Accept json
// @Produce json
// @Param payload body domain.DraftInput true "Draft"
// @Success 201 {object} domain.Story "created"
// @Failure 422 {object} httpkit.Envelope "validation failure"
// @Router /stories/compose [post]
func (h *handlers) compose(r *stdhttp.Request, in domain.DraftInput) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	story, err := h.svc.Compose(r.Context(), viewer, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(story), nil
}

// @Summary Delete one of your stories
// @Tags Stories
// @Accept json
// @Param payload body domain.DeleteInput true "Target"
// @Success 204 "deleted"
// @Failure 404 {object} httpkit.Envelope "unknown or foreign story"
// @Router /stories/delete [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), viewer, in.StoryID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Record that the viewer saw a story
// @Tags Stories
// @Accept json
// @Param payload body domain.ViewInput true "Target"
// @Success 204 "recorded"
// @Router /stories/view [post]
func (h *handlers) view(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	viewer, err := h.identity(r)
	if err != nil {
		return nil, err
	}
	// self views, repeats, and unknown ids all land here as no-ops
	h.svc.View(r.Context(), viewer, in.StoryID)
	return httpkit.NoContent(), nil
}
