package engine

import (
	"testing"
	"time"
)

// TestSchedulerFiresInDeadlineOrder verifies min-heap ordering and FIFO ties
func TestSchedulerFiresInDeadlineOrder(t *testing.T) {
	clock := NewGameClock()
	s := NewScheduler(clock)

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b1") })
	s.After(200*time.Millisecond, func() { order = append(order, "b2") })

	fired := s.Advance(clock.Advance(250 * time.Millisecond))
	if fired != 3 {
		t.Fatalf("Expected 3 timers fired at 250ms, got %d", fired)
	}
	want := []string{"a", "b1", "b2"}
	for i, v := range want {
		if order[i] != v {
			t.Errorf("Expected order %v, got %v", want, order)
			break
		}
	}

	s.Advance(clock.Advance(50 * time.Millisecond))
	if len(order) != 4 || order[3] != "c" {
		t.Errorf("Expected c to fire at 300ms, got %v", order)
	}
}

// TestSchedulerNotDueDoesNotFire verifies timers wait for their deadline
func TestSchedulerNotDueDoesNotFire(t *testing.T) {
	clock := NewGameClock()
	s := NewScheduler(clock)

	fired := false
	s.After(time.Second, func() { fired = true })

	s.Advance(clock.Advance(999 * time.Millisecond))
	if fired {
		t.Fatal("Timer fired before its deadline")
	}
	s.Advance(clock.Advance(time.Millisecond))
	if !fired {
		t.Fatal("Timer did not fire at its deadline")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}

// TestSchedulerCancel verifies cancelled timers never run
func TestSchedulerCancel(t *testing.T) {
	clock := NewGameClock()
	s := NewScheduler(clock)

	fired := false
	id := s.After(100*time.Millisecond, func() { fired = true })
	s.Cancel(id)

	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending after cancel, got %d", s.Pending())
	}
	s.Advance(clock.Advance(time.Second))
	if fired {
		t.Error("Cancelled timer fired")
	}
}

// TestSchedulerReset verifies Reset invalidates all pending timers
func TestSchedulerReset(t *testing.T) {
	clock := NewGameClock()
	s := NewScheduler(clock)

	count := 0
	for i := 0; i < 5; i++ {
		s.After(time.Duration(i)*time.Millisecond, func() { count++ })
	}
	s.Reset()
	s.Advance(clock.Advance(time.Second))

	if count != 0 {
		t.Errorf("Expected no timers after reset, got %d", count)
	}
}

// TestSchedulerRelativeToClock verifies deadlines are relative to the time of scheduling
func TestSchedulerRelativeToClock(t *testing.T) {
	clock := NewGameClock()
	s := NewScheduler(clock)

	clock.Advance(5 * time.Second)
	fired := false
	s.After(700*time.Millisecond, func() { fired = true })

	s.Advance(clock.Advance(600 * time.Millisecond))
	if fired {
		t.Fatal("Timer fired early")
	}
	s.Advance(clock.Advance(100 * time.Millisecond))
	if !fired {
		t.Fatal("Timer did not fire 700ms after scheduling")
	}
}

// TestGameClockIgnoresNegative verifies the clock is monotonic
func TestGameClockIgnoresNegative(t *testing.T) {
	clock := NewGameClock()
	clock.Advance(time.Second)
	if got := clock.Advance(-time.Second); got != time.Second {
		t.Errorf("Expected clock to stay at 1s, got %v", got)
	}
}

// TestFrameTimerClampsDelta verifies stalls are bounded
func TestFrameTimerClampsDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ft := NewFrameTimer(mock, 50*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if _, dt := ft.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms delta, got %v", dt)
	}

	mock.Advance(2 * time.Second)
	if _, dt := ft.Tick(); dt != 50*time.Millisecond {
		t.Errorf("Expected delta clamped to 50ms, got %v", dt)
	}

	mock.SetTime(mock.Now().Add(-time.Second))
	if _, dt := ft.Tick(); dt != 0 {
		t.Errorf("Expected 0 delta when time goes backwards, got %v", dt)
	}
}
