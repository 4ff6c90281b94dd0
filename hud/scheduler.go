package hud

import "time"

// FrameScheduler is a Scheduler driven by a fixed-rate game loop. The
// owner calls Tick once per frame; a task with period P fires every
// P / (1s / tps) frames. Everything runs on the caller's thread in Tick,
// in the order the tasks were added, so there is nothing to lock.
type FrameScheduler struct {
	ticksPerSecond int
	tasks          []*frameTask
}

type frameTask struct {
	every     int // frames between firings
	countdown int // frames until next firing
	fn        func()
	dead      bool
}

// NewFrameScheduler returns a scheduler for a loop running at tps frames
// per second (ebiten's default TPS is 60).
func NewFrameScheduler(tps int) *FrameScheduler {
	if tps <= 0 {
		tps = 60
	}
	return &FrameScheduler{ticksPerSecond: tps}
}

// Every implements Scheduler. Periods shorter than one frame fire every
// frame. The returned cancel is idempotent and takes effect before the
// task's next due frame, even when called from inside a firing task.
func (s *FrameScheduler) Every(period time.Duration, fn func()) (cancel func()) {
	frames := int(period * time.Duration(s.ticksPerSecond) / time.Second)
	if frames < 1 {
		frames = 1
	}
	task := &frameTask{every: frames, countdown: frames, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.dead = true }
}

// Tick advances the scheduler by one frame, firing every task that comes
// due. Tasks scheduled from inside a firing task start counting from the
// next frame.
func (s *FrameScheduler) Tick() {
	// Index loop on purpose: tasks appended during a firing must not be
	// visited this frame.
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		task := s.tasks[i]
		if task.dead {
			continue
		}
		task.countdown--
		if task.countdown > 0 {
			continue
		}
		task.countdown = task.every
		task.fn()
	}
	s.compact()
}

func (s *FrameScheduler) compact() {
	live := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.dead {
			live = append(live, task)
		}
	}
	// Drop references so cancelled tasks can be collected.
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
