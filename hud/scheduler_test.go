package hud

import (
	"testing"
	"time"
)

func TestFrameSchedulerFiresAtPeriod(t *testing.T) {
	s := NewFrameScheduler(60)
	fired := 0
	s.Every(time.Second, func() { fired++ })

	for i := 0; i < 59; i++ {
		s.Tick()
	}
	if fired != 0 {
		t.Fatalf("fired %d times after 59 frames, want 0", fired)
	}
	s.Tick()
	if fired != 1 {
		t.Fatalf("fired %d times after 60 frames, want 1", fired)
	}

	for i := 0; i < 120; i++ {
		s.Tick()
	}
	if fired != 3 {
		t.Errorf("fired %d times after 180 frames, want 3", fired)
	}
}

func TestFrameSchedulerSubFramePeriodFiresEveryFrame(t *testing.T) {
	s := NewFrameScheduler(60)
	fired := 0
	s.Every(time.Millisecond, func() { fired++ })

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if fired != 10 {
		t.Errorf("fired %d times over 10 frames, want 10", fired)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler(10)
	fired := 0
	cancel := s.Every(time.Second, func() { fired++ })

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}

	cancel()
	cancel() // idempotent
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if fired != 1 {
		t.Errorf("fired %d times after cancel, want 1", fired)
	}
}

func TestFrameSchedulerCancelFromInsideTask(t *testing.T) {
	s := NewFrameScheduler(1)
	fired := 0
	var cancel func()
	cancel = s.Every(time.Second, func() {
		fired++
		cancel()
	})

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if fired != 1 {
		t.Errorf("fired %d times, want 1 (self-cancel ignored?)", fired)
	}
}

func TestFrameSchedulerScheduleFromInsideTask(t *testing.T) {
	s := NewFrameScheduler(1)
	var first, second int
	s.Every(time.Second, func() {
		first++
		if first == 1 {
			s.Every(time.Second, func() { second++ })
		}
	})

	s.Tick() // first fires, schedules second
	if second != 0 {
		t.Fatalf("second fired %d times in the frame it was added, want 0", second)
	}
	s.Tick()
	if first != 2 || second != 1 {
		t.Errorf("first = %d, second = %d; want 2, 1", first, second)
	}
}

func TestFrameSchedulerIndependentTasks(t *testing.T) {
	s := NewFrameScheduler(60)
	var slow, fast int
	s.Every(time.Second, func() { slow++ })
	s.Every(500*time.Millisecond, func() { fast++ })

	for i := 0; i < 60; i++ {
		s.Tick()
	}
	if slow != 1 || fast != 2 {
		t.Errorf("slow = %d, fast = %d; want 1, 2", slow, fast)
	}
}
