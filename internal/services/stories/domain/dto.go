package domain

// DraftInput is the compose payload
// the composer re-validates everything; these tags are the transport's first line
type DraftInput struct {
	Text       string `json:"text" validate:"required" example:"dinner was on me, you owe me a story"`
	Background string `json:"background" validate:"required,oneof=sunset ocean midnight candy forest flame royal slate" example:"ocean"`
	Font       string `json:"font" validate:"required,oneof=sans serif script" example:"sans"`
	TTLMs      int64  `json:"ttl_ms" validate:"required,story_ttl" example:"3600000"`
}

// DeleteInput identifies a story to remove
type DeleteInput struct {
	StoryID string `json:"story_id" validate:"required,uuid4" example:"7f9c24e8-3b0a-4b9d-9c2e-0d6a1f2b3c4d"`
}

// ViewInput identifies a story being viewed
type ViewInput struct {
	StoryID string `json:"story_id" validate:"required,uuid4" example:"7f9c24e8-3b0a-4b9d-9c2e-0d6a1f2b3c4d"`
}

// ComposeOptions is the static palette the composer UI renders from
type ComposeOptions struct {
	Backgrounds []Background `json:"backgrounds"`
	Fonts       []Font       `json:"fonts"`
	TTLMs       []int64      `json:"ttl_ms"`
}

// NewComposeOptions lists every preset in display order
func NewComposeOptions() ComposeOptions {
	ttls := TTLs()
	ms := make([]int64, len(ttls))
	for i, t := range ttls {
		ms[i] = t.Millis()
	}
	return ComposeOptions{Backgrounds: Backgrounds(), Fonts: Fonts(), TTLMs: ms}
}

// DashboardStory pairs one of the author's own stories with its reach
type DashboardStory struct {
	Story       Story  `json:"story"`
	UniqueViews uint64 `json:"unique_views"`
}

// FeedAuthor is one row of the story feed
type FeedAuthor struct {
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Unseen     bool   `json:"unseen"`
	Stories    int    `json:"stories"`
}
