package input

// Action is a game-level input, independent of the physical key
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionStart
	ActionRestart
	ActionMute
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionStart:   "start",
	ActionRestart: "restart",
	ActionMute:    "mute",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// opposite returns the direction cancelled by a press of a, or ActionNone
func (a Action) opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}
