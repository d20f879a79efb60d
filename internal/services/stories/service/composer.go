package service

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	perr "storydeck/internal/platform/errors"
	"storydeck/internal/services/stories/domain"
)

// maxStoryRunes caps story length in characters, counted over NFC
const maxStoryRunes = 200

// draft is a fully validated compose payload
type draft struct {
	text string
	bg   domain.Background
	font domain.Font
	ttl  domain.TTL
}

// normalizeDraft trims, NFC-normalizes, and validates a compose payload
// validation failures are the only errors a compose can surface
func normalizeDraft(in domain.DraftInput) (draft, error) {
	text := norm.NFC.String(strings.TrimSpace(in.Text))
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return draft{}, perr.WithField(perr.Validationf("story text must not be empty"), "text")
	}
	if n > maxStoryRunes {
		return draft{}, perr.WithField(
			perr.Validationf("story text exceeds %d characters", maxStoryRunes), "text")
	}

	bg := domain.Background(in.Background)
	if !bg.Valid() {
		return draft{}, perr.WithField(perr.Validationf("unknown background %q", in.Background), "background")
	}
	font := domain.Font(in.Font)
	if !font.Valid() {
		return draft{}, perr.WithField(perr.Validationf("unknown font %q", in.Font), "font")
	}
	ttl, ok := domain.TTLFromMillis(in.TTLMs)
	if !ok {
		return draft{}, perr.WithField(perr.Validationf("unsupported lifetime %dms", in.TTLMs), "ttl_ms")
	}
	return draft{text: text, bg: bg, font: font, ttl: ttl}, nil
}
