package input

import "time"

// Snapshot is the input state read once per tick
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool
}

// Held reports whether the action is currently held
func (s Snapshot) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

// Pressed reports whether the action was pressed since the previous snapshot
func (s Snapshot) Pressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

// NewSnapshot builds a snapshot directly, for tests and scripted input
func NewSnapshot(held []Action, pressed []Action) Snapshot {
	var s Snapshot
	for _, a := range held {
		if a < actionCount {
			s.held[a] = true
		}
	}
	for _, a := range pressed {
		if a < actionCount {
			s.pressed[a] = true
		}
	}
	return s
}

// Tracker derives held state from key presses
// Terminals report presses and auto-repeats but no releases, so an action is
// held while its last press is younger than the hold window. A fresh press
// uses the longer initial window to bridge the OS delay before auto-repeat
// starts; once repeats arrive the short repeat window applies.
type Tracker struct {
	initial   time.Duration
	repeat    time.Duration
	lastPress [actionCount]time.Time
	repeating [actionCount]bool
	pending   [actionCount]bool
}

// NewTracker creates a tracker with the initial-press and repeat hold windows
func NewTracker(initial, repeat time.Duration) *Tracker {
	if initial < repeat {
		initial = repeat
	}
	return &Tracker{initial: initial, repeat: repeat}
}

// Press records a key press or auto-repeat at now
// A direction press releases its opposite so reversing is immediate
func (t *Tracker) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	t.repeating[a] = t.held(a, now)
	t.lastPress[a] = now
	t.pending[a] = true
	if o := a.opposite(); o != ActionNone {
		t.lastPress[o] = time.Time{}
		t.repeating[o] = false
	}
}

// ReleaseAll forgets every held action, used when the terminal loses focus
func (t *Tracker) ReleaseAll() {
	for a := range t.lastPress {
		t.lastPress[a] = time.Time{}
		t.repeating[a] = false
	}
}

func (t *Tracker) held(a Action, now time.Time) bool {
	last := t.lastPress[a]
	if last.IsZero() {
		return false
	}
	window := t.initial
	if t.repeating[a] {
		window = t.repeat
	}
	return now.Sub(last) <= window
}

// Snapshot returns the state at now and clears the pressed edges
// A press is reported as held on at least the next snapshot, even if the window elapsed
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	var s Snapshot
	for a := Action(1); a < actionCount; a++ {
		if t.pending[a] {
			s.pressed[a] = true
			s.held[a] = !t.lastPress[a].IsZero()
			t.pending[a] = false
			continue
		}
		s.held[a] = t.held(a, now)
	}
	return s
}
