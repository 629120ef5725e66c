package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Duration
	seq      uint64
	fn       func()
}

// timerHeap orders by deadline, then by scheduling order
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler runs single-shot callbacks against game time
// Callbacks fire on the goroutine calling Advance, never preempting the current tick
type Scheduler struct {
	clock     *GameClock
	timers    timerHeap
	cancelled map[TimerID]struct{}
	nextID    TimerID
	seq       uint64
}

// NewScheduler creates a scheduler reading deadlines from clock
func NewScheduler(clock *GameClock) *Scheduler {
	return &Scheduler{
		clock:     clock,
		cancelled: make(map[TimerID]struct{}),
	}
}

// After schedules fn to run once game time has advanced by d
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.nextID++
	s.seq++
	heap.Push(&s.timers, &timer{
		id:       s.nextID,
		deadline: s.clock.Now() + d,
		seq:      s.seq,
		fn:       fn,
	})
	return s.nextID
}

// Cancel prevents a pending timer from firing
func (s *Scheduler) Cancel(id TimerID) {
	for _, t := range s.timers {
		if t.id == id {
			s.cancelled[id] = struct{}{}
			return
		}
	}
}

// Advance fires every timer whose deadline is at or before now, in deadline order
// Timers scheduled by a firing callback run in the same call only if already due
func (s *Scheduler) Advance(now time.Duration) int {
	fired := 0
	for len(s.timers) > 0 && s.timers[0].deadline <= now {
		t := heap.Pop(&s.timers).(*timer)
		if _, ok := s.cancelled[t.id]; ok {
			delete(s.cancelled, t.id)
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of timers not yet fired or cancelled
func (s *Scheduler) Pending() int {
	return len(s.timers) - len(s.cancelled)
}

// Reset drops all pending timers
func (s *Scheduler) Reset() {
	s.timers = s.timers[:0]
	clear(s.cancelled)
}
