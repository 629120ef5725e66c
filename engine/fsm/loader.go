package fsm

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownGuard  = errors.New("unknown guard")
)

// LoadConfig parses a YAML graph and populates the Machine
// Actions and guards must be registered beforehand; every reference is validated
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameIDs = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	m.AddState(StateRoot, "Root", StateNone)

	// Sort keys for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ids := map[string]StateID{"Root": StateRoot}
	for i, name := range names {
		ids[name] = StateID(i + 2)
	}

	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		parent := cfg.Parent
		if parent == "" {
			parent = "Root"
		}
		parentID, ok := ids[parent]
		if !ok {
			return fmt.Errorf("state '%s' parent '%s': %w", name, parent, ErrUnknownState)
		}
		node := m.AddState(ids[name], name, parentID)

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, ids); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initial, ok := ids[config.Initial]
	if !ok || initial == StateRoot {
		return fmt.Errorf("initial state '%s': %w", config.Initial, ErrUnknownState)
	}
	m.InitialStateID = initial
	return nil
}

func (m *Machine[T]) compileActions(cfgs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(cfgs))
	for _, c := range cfgs {
		fn, ok := m.actionReg[c.Action]
		if !ok {
			return nil, fmt.Errorf("'%s': %w", c.Action, ErrUnknownAction)
		}
		actions = append(actions, Action[T]{Func: fn, Args: c.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], cfgs []TransitionConfig, ids map[string]StateID) error {
	for _, c := range cfgs {
		target, ok := ids[c.Target]
		if !ok {
			return fmt.Errorf("target '%s': %w", c.Target, ErrUnknownState)
		}
		var guard GuardFunc[T]
		if c.Guard != "" {
			g, ok := m.guardReg[c.Guard]
			if !ok {
				return fmt.Errorf("'%s': %w", c.Guard, ErrUnknownGuard)
			}
			guard = g
		}
		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: target,
			Event:    Event(c.Event),
			Guard:    guard,
		})
	}
	return nil
}
