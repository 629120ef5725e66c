package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Event names an external trigger routed through HandleEvent
type Event string

// Machine is a hierarchical finite state machine runtime with a single active leaf
// T is the context type passed to actions and guards (e.g. *match.Controller)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes   map[StateID]*Node[T]
	nameIDs map[string]StateID

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	activePath    []StateID // Root -> ... -> Leaf

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    Event
	Guard    GuardFunc[T] // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
