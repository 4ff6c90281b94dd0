package hud

import (
	"fmt"
	"time"
)

// Scheduler is the host timer facility a CountdownTimer ticks on. The
// game supplies a FrameScheduler pumped by the ebiten update loop; tests
// supply hand-driven fakes.
type Scheduler interface {
	// Every schedules fn to run once per period until the returned
	// cancel func is called. Cancelling more than once is safe.
	Every(period time.Duration, fn func()) (cancel func())
}

// CountdownTimer counts whole seconds down to zero, mirroring the
// remaining time into a text element as "Time: <n>". At most one tick is
// ever active per timer. When the count reaches zero the tick is
// cancelled first and the completion callback, if one is set, fires
// exactly once.
//
// All methods must be called from the scheduler's own thread; the timer
// does no locking of its own.
type CountdownTimer struct {
	*TextDisplay

	sched      Scheduler
	duration   int
	remaining  int
	cancel     func()
	onComplete func()
}

// NewCountdownTimer binds id in doc and renders the initial remaining
// time immediately. Negative durations clamp to zero; starting a
// zero-duration timer completes it on the spot.
func NewCountdownTimer(doc Document, id string, seconds int, sched Scheduler) (*CountdownTimer, error) {
	d, err := NewTextDisplay(doc, id)
	if err != nil {
		return nil, err
	}
	if seconds < 0 {
		seconds = 0
	}
	t := &CountdownTimer{
		TextDisplay: d,
		sched:       sched,
		duration:    seconds,
		remaining:   seconds,
	}
	t.render()
	return t, nil
}

// SetOnComplete replaces the completion callback. It may be called at
// any time, including mid-countdown; the callback in effect at the
// moment the count reaches zero is the one invoked. A nil fn clears it.
func (t *CountdownTimer) SetOnComplete(fn func()) {
	t.onComplete = fn
}

// Start begins the countdown at one tick per second. Calling Start while
// the timer is already running is a no-op, so a timer can never carry
// two ticks. If the remaining time is already zero the timer completes
// immediately without scheduling anything.
func (t *CountdownTimer) Start() {
	if t.cancel != nil {
		return
	}
	if t.remaining <= 0 {
		t.complete()
		return
	}
	t.cancel = t.sched.Every(time.Second, t.tick)
}

// Reset stops any active tick, restores the remaining time to the
// initial duration, and re-renders. The completion callback is kept.
// Safe to call while idle or after completion; a following Start runs a
// full fresh countdown.
func (t *CountdownTimer) Reset() {
	t.stop()
	t.remaining = t.duration
	t.render()
}

// Remaining returns the remaining time in seconds.
func (t *CountdownTimer) Remaining() int { return t.remaining }

// Running reports whether a countdown is in progress.
func (t *CountdownTimer) Running() bool { return t.cancel != nil }

func (t *CountdownTimer) tick() {
	t.remaining--
	t.render()
	if t.remaining <= 0 {
		t.complete()
	}
}

// complete cancels before calling back, so a callback that restarts the
// timer observes it idle.
func (t *CountdownTimer) complete() {
	t.stop()
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *CountdownTimer) stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
}

func (t *CountdownTimer) render() {
	t.SetText(fmt.Sprintf("Time: %d", t.remaining))
}
