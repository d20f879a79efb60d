// Package clock abstracts time and one-shot scheduling behind a small seam
// so components driven by timers can be tested against a virtual clock
package clock

import "time"

// Handle is an armed callback that can be cancelled
type Handle interface {
	// Stop cancels the callback; reports whether it was still pending
	Stop() bool
}

// Clock supplies the current time and schedules one-shot callbacks
type Clock interface {
	Now() time.Time
	// Schedule arms fn to run once after d; the returned Handle cancels it
	Schedule(d time.Duration, fn func()) Handle
}

// System returns a Clock backed by the wall clock and time.AfterFunc
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Schedule(d time.Duration, fn func()) Handle {
	return systemHandle{t: time.AfterFunc(d, fn)}
}

type systemHandle struct{ t *time.Timer }

func (h systemHandle) Stop() bool { return h.t.Stop() }
