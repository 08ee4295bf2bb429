package clock

import (
	"testing"
	"time"
)

func TestCountdownFormat(t *testing.T) {
	cutoff := time.Date(2026, time.February, 15, 23, 59, 59, 0, time.UTC)
	c := NewCountdown(cutoff)

	tests := []struct {
		name   string
		before time.Duration
		want   string
	}{
		{"rounds down", 1500 * time.Millisecond, "00:00:01"},
		{"sub-second", 999 * time.Millisecond, "00:00:00"},
		{"one minute", time.Minute, "00:01:00"},
		{"mixed", 2*time.Hour + 3*time.Minute + 4*time.Second + 900*time.Millisecond, "02:03:04"},
		{"over a day", 49 * time.Hour, "49:00:00"},
		{"at cutoff", 0, "00:00:00"},
		{"past cutoff", -5 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Format(cutoff.Add(-tt.before)); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountdownExpired(t *testing.T) {
	cutoff := time.Date(2026, time.February, 15, 23, 59, 59, 0, time.UTC)
	c := NewCountdown(cutoff)

	if c.Expired(cutoff.Add(-time.Millisecond)) {
		t.Error("expired before cutoff")
	}
	if !c.Expired(cutoff) || !c.Expired(cutoff.Add(time.Hour)) {
		t.Error("not expired at or after cutoff")
	}
	if c.Remaining(cutoff.Add(time.Hour)) != 0 {
		t.Error("remaining must clamp to zero")
	}
	if c.Remaining(cutoff.Add(-time.Minute)) != time.Minute {
		t.Error("unexpected remaining")
	}
}

func TestCutoffFor(t *testing.T) {
	now := time.Date(2027, time.January, 3, 10, 0, 0, 0, time.UTC)
	got := CutoffFor(now, time.February, 15, time.UTC)
	want := time.Date(2027, time.February, 15, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CutoffFor = %v, want %v", got, want)
	}
}

func TestActivationWindow(t *testing.T) {
	now := time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
	w := WindowFor(now, time.February, 13, 15, time.UTC)

	if !w.Contains(now) {
		t.Error("valentine's day should be inside the window")
	}
	if !w.Contains(w.Start) || !w.Contains(w.End) {
		t.Error("window bounds are inclusive")
	}
	if w.Contains(time.Date(2026, time.February, 12, 23, 59, 59, 0, time.UTC)) {
		t.Error("day before window accepted")
	}
	if w.Contains(time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC)) {
		t.Error("day after window accepted")
	}
}

func TestRitualTimer(t *testing.T) {
	rt := NewRitualTimer(RitualDuration)
	if rt.String() != "7:00" || rt.SecondsLeft() != 420 {
		t.Fatalf("unexpected start %s (%d)", rt, rt.SecondsLeft())
	}

	rt.Tick()
	if rt.String() != "6:59" {
		t.Errorf("after one tick got %s", rt)
	}

	short := NewRitualTimer(2 * time.Second)
	if !short.Tick() {
		t.Error("timer stopped early")
	}
	if short.Tick() {
		t.Error("timer should report stop at zero")
	}
	if short.Tick() || short.SecondsLeft() != 0 || !short.Done() {
		t.Error("timer must stay at zero")
	}
	if short.String() != "0:00" {
		t.Errorf("expected 0:00, got %s", short)
	}
}
