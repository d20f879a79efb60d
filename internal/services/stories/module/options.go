package module

import (
	"time"

	"storydeck/internal/platform/config"
)

// Options holds configuration settings for the stories module
type Options struct {
	SlideDuration time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_STORIES_")
	return Options{
		SlideDuration: time.Duration(sf.MayInt("SLIDE_MS", 5000)) * time.Millisecond,
	}
}
