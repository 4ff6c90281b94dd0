package hud

import "testing"

func newTestTimer(t *testing.T, seconds int) (*CountdownTimer, *fakeDocument, *manualScheduler) {
	t.Helper()
	doc := newFakeDocument("time")
	sched := &manualScheduler{}
	timer, err := NewCountdownTimer(doc, "time", seconds, sched)
	if err != nil {
		t.Fatal(err)
	}
	return timer, doc, sched
}

func TestCountdownTimerRendersInitialDuration(t *testing.T) {
	_, doc, sched := newTestTimer(t, 30)
	if got := doc.text(t, "time"); got != "Time: 30" {
		t.Errorf("text = %q, want %q", got, "Time: 30")
	}
	if sched.live() != 0 {
		t.Error("construction scheduled a tick before Start")
	}
}

func TestCountdownTimerMissingID(t *testing.T) {
	doc := newFakeDocument()
	if _, err := NewCountdownTimer(doc, "time", 30, &manualScheduler{}); err == nil {
		t.Fatal("NewCountdownTimer on empty document succeeded, want error")
	}
}

func TestCountdownTimerCountsToZero(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 3)
	fired := 0
	timer.SetOnComplete(func() { fired++ })

	timer.Start()
	if !timer.Running() {
		t.Fatal("Running() = false after Start")
	}

	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 2" {
		t.Errorf("text after 1 tick = %q, want %q", got, "Time: 2")
	}
	if fired != 0 {
		t.Fatalf("callback fired %d times mid-countdown", fired)
	}

	sched.fire()
	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text after 3 ticks = %q, want %q", got, "Time: 0")
	}
	if fired != 1 {
		t.Fatalf("callback fired %d times, want 1", fired)
	}
	if timer.Running() {
		t.Error("Running() = true after completion")
	}

	// The tick is gone; further scheduler rounds must not move the clock.
	sched.fire()
	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text after extra rounds = %q, want %q", got, "Time: 0")
	}
	if fired != 1 {
		t.Errorf("callback fired %d times after extra rounds, want 1", fired)
	}
}

func TestCountdownTimerStartWhileRunningIsNoOp(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 3)

	timer.Start()
	timer.Start()
	timer.Start()

	if sched.live() != 1 {
		t.Fatalf("live ticks = %d, want 1", sched.live())
	}
	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 2" {
		t.Errorf("text = %q, want %q (double-rate countdown?)", got, "Time: 2")
	}
}

func TestCountdownTimerResetMidCountdown(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 3)
	fired := 0
	timer.SetOnComplete(func() { fired++ })

	timer.Start()
	sched.fire()
	timer.Reset()

	if got := doc.text(t, "time"); got != "Time: 3" {
		t.Errorf("text after Reset = %q, want %q", got, "Time: 3")
	}
	if timer.Running() {
		t.Error("Running() = true after Reset")
	}

	// The cancelled tick must never fire again.
	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 3" {
		t.Errorf("text = %q after cancelled round, want %q", got, "Time: 3")
	}

	// A fresh Start runs a full countdown and keeps the callback.
	timer.Start()
	sched.fire()
	sched.fire()
	sched.fire()
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q after fresh countdown, want %q", got, "Time: 0")
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestCountdownTimerResetWhileIdle(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 3)

	timer.Reset() // no tick to cancel; must not panic
	if got := doc.text(t, "time"); got != "Time: 3" {
		t.Errorf("text = %q, want %q", got, "Time: 3")
	}
	if sched.cancels != 0 {
		t.Errorf("cancels = %d for idle Reset, want 0", sched.cancels)
	}
}

func TestCountdownTimerRestartAfterCompletion(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 2)
	fired := 0
	timer.SetOnComplete(func() { fired++ })

	timer.Start()
	sched.fire()
	sched.fire()
	if fired != 1 {
		t.Fatalf("callback fired %d times, want 1", fired)
	}

	timer.Reset()
	timer.Start()
	sched.fire()
	sched.fire()

	if fired != 2 {
		t.Errorf("callback fired %d times after second run, want 2", fired)
	}
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}
}

func TestCountdownTimerZeroDuration(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 0)
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}

	fired := 0
	timer.SetOnComplete(func() { fired++ })
	timer.Start()

	// Completes on the spot: no tick, no negative display, one callback.
	if sched.live() != 0 {
		t.Errorf("live ticks = %d, want 0", sched.live())
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}
}

func TestCountdownTimerNegativeDurationClamps(t *testing.T) {
	timer, doc, _ := newTestTimer(t, -5)
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", timer.Remaining())
	}
}

func TestCountdownTimerCallbackSwappedMidRun(t *testing.T) {
	timer, _, sched := newTestTimer(t, 2)

	var firstFired, secondFired int
	timer.SetOnComplete(func() { firstFired++ })
	timer.Start()
	sched.fire()

	// Swap while running: only the callback in effect at completion runs.
	timer.SetOnComplete(func() { secondFired++ })
	sched.fire()

	if firstFired != 0 {
		t.Errorf("replaced callback fired %d times, want 0", firstFired)
	}
	if secondFired != 1 {
		t.Errorf("current callback fired %d times, want 1", secondFired)
	}
}

func TestCountdownTimerCallbackClearedMidRun(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 1)
	timer.SetOnComplete(func() { t.Error("cleared callback fired") })
	timer.SetOnComplete(nil)

	timer.Start()
	sched.fire()

	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}
}

func TestCountdownTimerCallbackMayRestart(t *testing.T) {
	timer, doc, sched := newTestTimer(t, 1)
	runs := 0
	timer.SetOnComplete(func() {
		runs++
		if runs == 1 {
			// The timer must be idle inside its own completion callback.
			if timer.Running() {
				t.Error("Running() = true inside completion callback")
			}
			timer.Reset()
			timer.Start()
		}
	})

	timer.Start()
	sched.fire() // completes first run, callback restarts
	sched.fire() // second run completes

	if runs != 2 {
		t.Errorf("completions = %d, want 2", runs)
	}
	if got := doc.text(t, "time"); got != "Time: 0" {
		t.Errorf("text = %q, want %q", got, "Time: 0")
	}
}
