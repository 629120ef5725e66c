package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestDefaultKeyTableBindings verifies arrows and WASD are equivalent
func TestDefaultKeyTableBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"arrow left", tcell.KeyLeft, 0, ActionLeft},
		{"arrow right", tcell.KeyRight, 0, ActionRight},
		{"arrow up", tcell.KeyUp, 0, ActionUp},
		{"arrow down", tcell.KeyDown, 0, ActionDown},
		{"a", tcell.KeyRune, 'a', ActionLeft},
		{"D uppercase", tcell.KeyRune, 'D', ActionRight},
		{"w", tcell.KeyRune, 'w', ActionUp},
		{"s", tcell.KeyRune, 's', ActionDown},
		{"space", tcell.KeyRune, ' ', ActionStart},
		{"r", tcell.KeyRune, 'r', ActionRestart},
		{"ctrl+r", tcell.KeyCtrlR, 0, ActionRestart},
		{"m", tcell.KeyRune, 'm', ActionMute},
		{"escape", tcell.KeyEscape, 0, ActionQuit},
	}

	for _, tc := range tests {
		got, ok := kt.LookupKey(tc.key, tc.r)
		if !ok || got != tc.want {
			t.Errorf("%s: expected %s, got %s (ok=%v)", tc.name, tc.want, got, ok)
		}
	}

	if _, ok := kt.LookupKey(tcell.KeyRune, 'x'); ok {
		t.Error("Expected unbound rune to miss")
	}
}

// TestTrackerHoldWindow verifies a single press expires after the initial window
func TestTrackerHoldWindow(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionLeft, epoch)

	s := tr.Snapshot(epoch.Add(16 * time.Millisecond))
	if !s.Held(ActionLeft) || !s.Pressed(ActionLeft) {
		t.Fatal("Expected left held and pressed on first snapshot")
	}

	s = tr.Snapshot(epoch.Add(500 * time.Millisecond))
	if !s.Held(ActionLeft) {
		t.Error("Expected left still held inside initial window")
	}
	if s.Pressed(ActionLeft) {
		t.Error("Expected pressed edge to clear after first snapshot")
	}

	s = tr.Snapshot(epoch.Add(600 * time.Millisecond))
	if s.Held(ActionLeft) {
		t.Error("Expected left released after initial window")
	}
}

// TestTrackerRepeatExtendsHold verifies auto-repeat keeps the key held
func TestTrackerRepeatExtendsHold(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionUp, epoch)
	tr.Snapshot(epoch)
	tr.Press(ActionUp, epoch.Add(150*time.Millisecond))
	tr.Snapshot(epoch.Add(150 * time.Millisecond))

	if !tr.Snapshot(epoch.Add(300 * time.Millisecond)).Held(ActionUp) {
		t.Error("Expected repeat to extend hold")
	}
}

// TestTrackerHeldThroughRepeatDelay verifies a held key never drops out
// between the first press and the start of auto-repeat
func TestTrackerHeldThroughRepeatDelay(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)

	const (
		repeatDelay = 500
		repeatRate  = 33
		frame       = 16
		held        = 1000
	)

	lastRepeat := 0
	for ms := 0; ms <= held; ms++ {
		now := epoch.Add(time.Duration(ms) * time.Millisecond)
		if ms == 0 || (ms >= repeatDelay && (ms-repeatDelay)%repeatRate == 0) {
			tr.Press(ActionRight, now)
			lastRepeat = ms
		}
		if ms%frame == 0 && !tr.Snapshot(now).Held(ActionRight) {
			t.Fatalf("Expected right held at %dms", ms)
		}
	}

	// After repeats stop the short window applies
	at := func(ms int) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }
	if !tr.Snapshot(at(lastRepeat + 170)).Held(ActionRight) {
		t.Error("Expected right held inside repeat window")
	}
	if tr.Snapshot(at(lastRepeat + 200)).Held(ActionRight) {
		t.Error("Expected right released once repeats stop")
	}
}

// TestTrackerNewPressAfterReleaseUsesInitialWindow verifies a later press starts a fresh hold
func TestTrackerNewPressAfterReleaseUsesInitialWindow(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionDown, epoch)
	tr.Press(ActionDown, epoch.Add(500*time.Millisecond))
	tr.Snapshot(epoch.Add(500 * time.Millisecond))

	// Released after repeats, then pressed again
	press := epoch.Add(2 * time.Second)
	tr.Press(ActionDown, press)
	tr.Snapshot(press)

	if !tr.Snapshot(press.Add(400 * time.Millisecond)).Held(ActionDown) {
		t.Error("Expected fresh press to use the initial window")
	}
}

// TestTrackerReleaseAll verifies focus loss drops every held action but keeps press edges
func TestTrackerReleaseAll(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionLeft, epoch)
	tr.Press(ActionUp, epoch)
	tr.Press(ActionStart, epoch)
	tr.ReleaseAll()

	s := tr.Snapshot(epoch.Add(10 * time.Millisecond))
	if s.Held(ActionLeft) || s.Held(ActionUp) {
		t.Error("Expected directions released")
	}
	if !s.Pressed(ActionStart) {
		t.Error("Expected pending start press to survive")
	}
	if tr.Snapshot(epoch.Add(20 * time.Millisecond)).Held(ActionLeft) {
		t.Error("Expected left to stay released")
	}
}

// TestNewTrackerClampsInitialWindow verifies the initial window is never shorter than the repeat window
func TestNewTrackerClampsInitialWindow(t *testing.T) {
	tr := NewTracker(50*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionLeft, epoch)
	tr.Snapshot(epoch)

	if !tr.Snapshot(epoch.Add(150 * time.Millisecond)).Held(ActionLeft) {
		t.Error("Expected initial window raised to the repeat window")
	}
}

// TestTrackerOppositeReleases verifies reversing direction drops the old one
func TestTrackerOppositeReleases(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionLeft, epoch)
	tr.Snapshot(epoch)
	tr.Press(ActionRight, epoch.Add(10*time.Millisecond))

	s := tr.Snapshot(epoch.Add(20 * time.Millisecond))
	if s.Held(ActionLeft) {
		t.Error("Expected left released by right press")
	}
	if !s.Held(ActionRight) {
		t.Error("Expected right held")
	}
}

// TestTrackerStaleSnapshotStillReportsPress verifies a press is never lost between ticks
func TestTrackerStaleSnapshotStillReportsPress(t *testing.T) {
	tr := NewTracker(50*time.Millisecond, 50*time.Millisecond)
	tr.Press(ActionStart, epoch)

	s := tr.Snapshot(epoch.Add(time.Second))
	if !s.Pressed(ActionStart) {
		t.Error("Expected press to be reported even after the window")
	}
}

// TestTrackerIndependentAxes verifies diagonal movement
func TestTrackerIndependentAxes(t *testing.T) {
	tr := NewTracker(550*time.Millisecond, 180*time.Millisecond)
	tr.Press(ActionRight, epoch)
	tr.Press(ActionDown, epoch)

	s := tr.Snapshot(epoch)
	if !s.Held(ActionRight) || !s.Held(ActionDown) {
		t.Error("Expected right and down held together")
	}
}

// TestNewSnapshot verifies scripted snapshots
func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot([]Action{ActionLeft, ActionRight}, []Action{ActionStart})
	if !s.Held(ActionLeft) || !s.Held(ActionRight) {
		t.Error("Expected held actions set")
	}
	if !s.Pressed(ActionStart) || s.Pressed(ActionLeft) {
		t.Error("Expected only start pressed")
	}
	if s.Held(Action(200)) {
		t.Error("Expected out-of-range action to be false")
	}
}
