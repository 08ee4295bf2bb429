package clock

import (
	"fmt"
	"time"
)

// RitualDuration is how long a shared ritual lasts.
const RitualDuration = 7 * time.Minute

// RitualTimer counts whole seconds down to zero and then stays there.
type RitualTimer struct {
	left int
}

func NewRitualTimer(d time.Duration) RitualTimer {
	return RitualTimer{left: int(d / time.Second)}
}

// Tick advances one second. It reports whether the timer is still running.
func (t *RitualTimer) Tick() bool {
	if t.left <= 0 {
		return false
	}
	t.left--
	return t.left > 0
}

func (t RitualTimer) SecondsLeft() int { return t.left }

func (t RitualTimer) Done() bool { return t.left <= 0 }

// String renders M:SS.
func (t RitualTimer) String() string {
	return fmt.Sprintf("%d:%02d", t.left/60, t.left%60)
}
