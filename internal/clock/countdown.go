// Package clock holds the run's countdown to its cutoff instant and the
// shorter timer of a shared ritual.
package clock

import (
	"fmt"
	"time"
)

// TickInterval is the cadence of every on-screen clock.
const TickInterval = time.Second

// ZeroDisplay is shown once the cutoff has passed.
const ZeroDisplay = "00:00:00"

// Countdown counts down to a fixed cutoff instant.
type Countdown struct {
	Cutoff time.Time
}

func NewCountdown(cutoff time.Time) Countdown {
	return Countdown{Cutoff: cutoff}
}

// CutoffFor returns the end of the given day (23:59:59) of the given month in
// now's year, in loc.
func CutoffFor(now time.Time, month time.Month, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = now.Location()
	}
	return time.Date(now.In(loc).Year(), month, day, 23, 59, 59, 0, loc)
}

// Remaining is never negative.
func (c Countdown) Remaining(now time.Time) time.Duration {
	d := c.Cutoff.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func (c Countdown) Expired(now time.Time) bool {
	return c.Cutoff.Sub(now) <= 0
}

// Format renders the remaining time as HH:MM:SS, rounding down.
func (c Countdown) Format(now time.Time) string {
	ms := c.Cutoff.Sub(now).Milliseconds()
	if ms <= 0 {
		return ZeroDisplay
	}
	h := ms / (1000 * 60 * 60)
	m := (ms % (1000 * 60 * 60)) / (1000 * 60)
	s := (ms % (1000 * 60)) / 1000
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ActivationWindow is the span of days during which the experience opens.
type ActivationWindow struct {
	Start time.Time
	End   time.Time
}

// WindowFor spans from the start of startDay to the end of endDay of month,
// in now's year.
func WindowFor(now time.Time, month time.Month, startDay, endDay int, loc *time.Location) ActivationWindow {
	if loc == nil {
		loc = now.Location()
	}
	year := now.In(loc).Year()
	return ActivationWindow{
		Start: time.Date(year, month, startDay, 0, 0, 0, 0, loc),
		End:   time.Date(year, month, endDay, 23, 59, 59, 0, loc),
	}
}

func (w ActivationWindow) Contains(now time.Time) bool {
	return !now.Before(w.Start) && !now.After(w.End)
}
