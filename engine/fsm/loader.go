package fsm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/brick-breaker/event"
)

var (
	ErrNoInitialState = errors.New("fsm config has no initial state")
	ErrUnknownState   = errors.New("unknown state")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrUnknownGuard   = errors.New("unknown guard")
	ErrUnknownAction  = errors.New("unknown action")
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading; guards and actions must be registered first
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	return m.build(&config)
}

func (m *Machine[T]) build(config *RootConfig) error {
	if config.InitialState == "" {
		return ErrNoInitialState
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeID = StateNone
	m.timeInState = 0

	// Sort keys for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		id := StateID(i + 1)
		m.nameToID[name] = id
		m.nodes[id] = &Node[T]{ID: id, Name: name}
	}

	for _, name := range names {
		cfg := config.States[name]
		node := m.nodes[m.nameToID[name]]
		if cfg == nil {
			continue
		}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range cfg.Transitions {
			trans, err := m.compileTransition(tc)
			if err != nil {
				return fmt.Errorf("state '%s': %w", name, err)
			}
			node.Transitions = append(node.Transitions, trans)
		}
	}

	initial, ok := m.nameToID[config.InitialState]
	if !ok {
		return fmt.Errorf("initial '%s': %w", config.InitialState, ErrUnknownState)
	}
	m.initialID = initial
	return nil
}

func (m *Machine[T]) compileTransition(tc TransitionConfig) (Transition[T], error) {
	target, ok := m.nameToID[tc.Target]
	if !ok {
		return Transition[T]{}, fmt.Errorf("transition target '%s': %w", tc.Target, ErrUnknownState)
	}

	et, ok := event.GetEventType(tc.Trigger)
	if !ok {
		return Transition[T]{}, fmt.Errorf("trigger '%s': %w", tc.Trigger, ErrUnknownEvent)
	}

	trans := Transition[T]{TargetID: target, Event: et}
	if tc.Guard != "" {
		guard, ok := m.guardReg[tc.Guard]
		if !ok {
			return Transition[T]{}, fmt.Errorf("guard '%s': %w", tc.Guard, ErrUnknownGuard)
		}
		trans.Guard = guard
	}
	return trans, nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	if len(configs) == 0 {
		return nil, nil
	}

	actions := make([]Action[T], 0, len(configs))
	for _, ac := range configs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, fmt.Errorf("action '%s': %w", ac.Action, ErrUnknownAction)
		}

		args := ActionArgs{Payload: ac.Payload}
		if ac.Event != "" {
			et, ok := event.GetEventType(ac.Event)
			if !ok {
				return nil, fmt.Errorf("action '%s' event '%s': %w", ac.Action, ac.Event, ErrUnknownEvent)
			}
			args.Event = et
		}
		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}
