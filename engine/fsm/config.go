package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	Initial string                  `yaml:"initial"`
	States  map[string]*StateConfig `yaml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	OnExit      []ActionConfig     `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Event  string `yaml:"event"`
	Target string `yaml:"target"`
	Guard  string `yaml:"guard,omitempty"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string         `yaml:"action"`
	Args   map[string]any `yaml:"args,omitempty"`
}
