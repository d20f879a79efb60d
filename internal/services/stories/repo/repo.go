// Package repo provides the durable story storage over Postgres
package repo

import (
	"context"
	"time"

	"storydeck/internal/modkit/repokit"
	perr "storydeck/internal/platform/errors"
	"storydeck/internal/platform/store"
	"storydeck/internal/services/stories/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the durable story repository
type Storage interface {
	domain.BackendPort
}

// FetchAll loads every story with its viewers, grouped per author
// authors come back in order of their earliest story; stories ascend by creation time
func (s *pg) FetchAll(ctx context.Context) ([]domain.FeedEntry, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id::text, author_id, author_name, body, background, font, created_at, expires_at
		FROM stories
		ORDER BY created_at, id`)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "fetch stories")
	}
	defer rows.Close()

	byAuthor := map[string]int{}
	byStory := map[string]*domain.Story{}
	var entries []domain.FeedEntry
	for rows.Next() {
		var st domain.Story
		var bg, font string
		if err := rows.Scan(
			&st.ID, &st.AuthorID, &st.AuthorName, &st.Text,
			&bg, &font, &st.CreatedAt, &st.ExpiresAt,
		); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan story")
		}
		st.Background = domain.Background(bg)
		st.Font = domain.Font(font)

		i, ok := byAuthor[st.AuthorID]
		if !ok {
			i = len(entries)
			byAuthor[st.AuthorID] = i
			entries = append(entries, domain.FeedEntry{AuthorID: st.AuthorID, AuthorName: st.AuthorName})
		}
		entries[i].Stories = append(entries[i].Stories, st)
		byStory[st.ID] = &entries[i].Stories[len(entries[i].Stories)-1]
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate stories")
	}

	type viewRow struct {
		storyID string
		view    domain.View
	}
	views, err := store.Many(ctx, s.q, func(r store.Row) (viewRow, error) {
		var vr viewRow
		err := r.Scan(&vr.storyID, &vr.view.ViewerID, &vr.view.ViewedAt)
		return vr, err
	}, `
		SELECT story_id::text, viewer_id, viewed_at
		FROM story_views
		ORDER BY viewed_at, viewer_id`)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "fetch story views")
	}
	for _, vr := range views {
		if st, ok := byStory[vr.storyID]; ok {
			st.Viewers = append(st.Viewers, vr.view)
		}
	}
	return entries, nil
}

// Create persists a story exactly as composed locally
// ids and timestamps are minted by the caller; there is no retry here
func (s *pg) Create(ctx context.Context, st domain.Story) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO stories (id, author_id, author_name, body, background, font, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		st.ID, st.AuthorID, st.AuthorName, st.Text,
		string(st.Background), string(st.Font), st.CreatedAt, st.ExpiresAt,
	)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "insert story")
	}
	return nil
}

// Delete removes a story; its views go with it via cascade
func (s *pg) Delete(ctx context.Context, storyID string) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM stories WHERE id = $1`, storyID)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "delete story")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("story %s not found", storyID)
	}
	return nil
}

// ReportView upserts one (story, viewer) pair
// the conflict clause makes repeats free; the author guard is defense in depth
func (s *pg) ReportView(ctx context.Context, storyID, viewerID string, at time.Time) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO story_views (story_id, viewer_id, viewed_at)
		SELECT id, $2, $3 FROM stories WHERE id = $1 AND author_id <> $2
		ON CONFLICT (story_id, viewer_id) DO NOTHING`,
		storyID, viewerID, at,
	)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "report view")
	}
	return nil
}
