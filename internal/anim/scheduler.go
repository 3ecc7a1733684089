package anim

import "time"

// Task is a handle to something the Scheduler is running.
type Task struct {
	seq     Sequence
	onValue func(float64)
	onDone  func()

	interval time.Duration
	every    func()

	started   bool
	start     time.Time
	next      time.Time
	finished  bool
	cancelled bool
}

// Cancel stops the task. No callback of a cancelled task runs afterwards,
// including onDone. Cancel is safe to call more than once and on a nil Task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Done reports whether the task finished or was cancelled.
func (t *Task) Done() bool {
	return t == nil || t.finished || t.cancelled
}

func (t *Task) live() bool {
	return !t.finished && !t.cancelled
}

// Scheduler runs tasks when Tick is called. It is not safe for concurrent
// use; all calls must come from the goroutine that owns the frame loop.
type Scheduler struct {
	tasks []*Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Play starts seq on the next Tick. onValue receives every sampled value,
// the final one included; onDone runs once after the final value.
func (s *Scheduler) Play(seq Sequence, onValue func(float64), onDone func()) *Task {
	t := &Task{seq: seq, onValue: onValue, onDone: onDone}
	s.tasks = append(s.tasks, t)
	return t
}

// Every runs fn on each Tick at least interval apart until cancelled. An
// interval of zero fires on every Tick.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	t := &Task{interval: interval, every: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Active reports whether any task is still live.
func (s *Scheduler) Active() bool {
	for _, t := range s.tasks {
		if t.live() {
			return true
		}
	}
	return false
}

// Tick advances every live task to now. Tasks added by callbacks during a
// Tick start on the following one.
func (s *Scheduler) Tick(now time.Time) {
	pending := s.tasks
	for _, t := range pending {
		if !t.live() {
			continue
		}
		if t.every != nil {
			s.tickEvery(t, now)
		} else {
			s.tickPlay(t, now)
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.live() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

func (s *Scheduler) tickPlay(t *Task, now time.Time) {
	if !t.started {
		t.started = true
		t.start = now
	}
	elapsed := now.Sub(t.start)
	end := elapsed >= t.seq.Duration()
	if end {
		elapsed = t.seq.Duration()
	}

	if t.onValue != nil {
		t.onValue(t.seq.At(elapsed))
	}
	if !end || t.cancelled {
		return
	}
	t.finished = true
	if t.onDone != nil {
		t.onDone()
	}
}

func (s *Scheduler) tickEvery(t *Task, now time.Time) {
	if t.started && now.Before(t.next) {
		return
	}
	t.started = true
	t.next = now.Add(t.interval)
	t.every()
}
