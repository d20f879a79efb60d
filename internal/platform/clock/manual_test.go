package clock

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

func TestManual_AdvanceFiresInDueOrder(t *testing.T) {
	t.Parallel()

	m := NewManual(t0)
	var got []string
	m.Schedule(2*time.Second, func() { got = append(got, "b") })
	m.Schedule(1*time.Second, func() { got = append(got, "a") })
	m.Schedule(3*time.Second, func() { got = append(got, "c") })

	m.Advance(2 * time.Second)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("fired = %v, want [a b]", got)
	}
	if m.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", m.Pending())
	}
}

func TestManual_SameDueFiresInScheduleOrder(t *testing.T) {
	t.Parallel()

	m := NewManual(t0)
	var got []string
	m.Schedule(time.Second, func() { got = append(got, "first") })
	m.Schedule(time.Second, func() { got = append(got, "second") })

	m.Advance(time.Second)
	if len(got) != 2 || got[0] != "first" {
		t.Fatalf("fired = %v, want schedule order", got)
	}
}

func TestManual_NowAdvancesWithCallbacks(t *testing.T) {
	t.Parallel()

	m := NewManual(t0)
	var at time.Time
	m.Schedule(time.Second, func() { at = m.Now() })

	m.Advance(5 * time.Second)
	if !at.Equal(t0.Add(time.Second)) {
		t.Fatalf("callback saw now=%v, want due instant", at)
	}
	if !m.Now().Equal(t0.Add(5 * time.Second)) {
		t.Fatalf("now = %v after advance", m.Now())
	}
}

func TestManual_CallbackMaySchedule(t *testing.T) {
	t.Parallel()

	// a chain of one-second timers, each armed by the previous firing
	m := NewManual(t0)
	fired := 0
	var arm func()
	arm = func() {
		m.Schedule(time.Second, func() {
			fired++
			if fired < 3 {
				arm()
			}
		})
	}
	arm()

	m.Advance(3 * time.Second)
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
}

func TestManual_StopPreventsFiring(t *testing.T) {
	t.Parallel()

	m := NewManual(t0)
	fired := false
	h := m.Schedule(time.Second, func() { fired = true })

	if !h.Stop() {
		t.Fatalf("Stop on armed timer = false")
	}
	if h.Stop() {
		t.Fatalf("second Stop = true")
	}
	m.Advance(time.Minute)
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestSystem_ScheduleAndStop(t *testing.T) {
	t.Parallel()

	c := System()
	done := make(chan struct{})
	c.Schedule(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("system timer never fired")
	}

	h := c.Schedule(time.Hour, func() {})
	if !h.Stop() {
		t.Fatalf("Stop on pending system timer = false")
	}
}
