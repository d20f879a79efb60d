package domain

import "time"

// Background is the closed set of card background presets
type Background string

// Background presets
const (
	BackgroundSunset   Background = "sunset"
	BackgroundOcean    Background = "ocean"
	BackgroundMidnight Background = "midnight"
	BackgroundCandy    Background = "candy"
	BackgroundForest   Background = "forest"
	BackgroundFlame    Background = "flame"
	BackgroundRoyal    Background = "royal"
	BackgroundSlate    Background = "slate"
)

// Backgrounds returns all presets in display order
func Backgrounds() []Background {
	return []Background{
		BackgroundSunset, BackgroundOcean, BackgroundMidnight, BackgroundCandy,
		BackgroundForest, BackgroundFlame, BackgroundRoyal, BackgroundSlate,
	}
}

// Valid reports membership in the closed set
func (b Background) Valid() bool {
	switch b {
	case BackgroundSunset, BackgroundOcean, BackgroundMidnight, BackgroundCandy,
		BackgroundForest, BackgroundFlame, BackgroundRoyal, BackgroundSlate:
		return true
	}
	return false
}

// Font is the closed set of text styles
type Font string

// Font styles
const (
	FontSans   Font = "sans"
	FontSerif  Font = "serif"
	FontScript Font = "script"
)

// Fonts returns all styles in display order
func Fonts() []Font { return []Font{FontSans, FontSerif, FontScript} }

// Valid reports membership in the closed set
func (f Font) Valid() bool {
	switch f {
	case FontSans, FontSerif, FontScript:
		return true
	}
	return false
}

// TTL is a story lifetime drawn from a closed set of durations
type TTL time.Duration

// TTL choices
const (
	TTL1Minute   = TTL(1 * time.Minute)
	TTL5Minutes  = TTL(5 * time.Minute)
	TTL15Minutes = TTL(15 * time.Minute)
	TTL30Minutes = TTL(30 * time.Minute)
	TTL1Hour     = TTL(1 * time.Hour)
	TTL3Hours    = TTL(3 * time.Hour)
	TTL6Hours    = TTL(6 * time.Hour)
	TTL12Hours   = TTL(12 * time.Hour)
	TTL24Hours   = TTL(24 * time.Hour)
)

// TTLs returns all lifetimes shortest first
func TTLs() []TTL {
	return []TTL{
		TTL1Minute, TTL5Minutes, TTL15Minutes, TTL30Minutes,
		TTL1Hour, TTL3Hours, TTL6Hours, TTL12Hours, TTL24Hours,
	}
}

// Valid reports membership in the closed set
func (t TTL) Valid() bool {
	switch t {
	case TTL1Minute, TTL5Minutes, TTL15Minutes, TTL30Minutes,
		TTL1Hour, TTL3Hours, TTL6Hours, TTL12Hours, TTL24Hours:
		return true
	}
	return false
}

// Duration converts the lifetime to a time.Duration
func (t TTL) Duration() time.Duration { return time.Duration(t) }

// Millis returns the wire form of the lifetime
func (t TTL) Millis() int64 { return time.Duration(t).Milliseconds() }

// TTLFromMillis maps a wire value back to a TTL
// ok is false for values outside the closed set
func TTLFromMillis(ms int64) (TTL, bool) {
	t := TTL(time.Duration(ms) * time.Millisecond)
	return t, t.Valid()
}
