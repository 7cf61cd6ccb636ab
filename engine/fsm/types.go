package fsm

import (
	"time"

	"github.com/lixenwraith/brick-breaker/event"
)

// StateID is a unique identifier for a state
type StateID int

const StateNone StateID = 0

// Machine is a generic flat finite state machine driven by game events
// T is the context type passed to actions and guards (e.g., *game.Game)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	initialID StateID

	// Runtime State
	activeID    StateID
	timeInState time.Duration

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node is a single state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order; first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated every Update
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args ActionArgs
}

// ActionArgs are the static parameters attached to an action in config
type ActionArgs struct {
	Event   event.EventType
	Payload any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args ActionArgs)
