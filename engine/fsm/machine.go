package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/brick-breaker/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d: %w", m.initialID, ErrUnknownState)
	}
	m.activeID = node.ID
	m.timeInState = 0
	runActions(ctx, node.OnEnter)
	return nil
}

// Update advances time in state, runs OnUpdate actions and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return
	}
	m.timeInState += dt
	runActions(ctx, node.OnUpdate)
	m.fire(ctx, node, event.EventTick)
}

// HandleEvent applies the first transition on et whose guard passes
// Returns false when the current state does not react to et
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	return m.fire(ctx, node, et)
}

// CanHandle reports whether et would cause a transition right now
func (m *Machine[T]) CanHandle(ctx T, et event.EventType) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == et && (trans.Guard == nil || trans.Guard(ctx)) {
			return true
		}
	}
	return false
}

func (m *Machine[T]) fire(ctx T, node *Node[T], et event.EventType) bool {
	for _, trans := range node.Transitions {
		if trans.Event != et {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans.TargetID)
		return true
	}
	return false
}

func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	runActions(ctx, from.OnExit)
	m.activeID = targetID
	m.timeInState = 0
	runActions(ctx, m.nodes[targetID].OnEnter)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeID
}

// CurrentName returns the active state's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// StateID looks up a state by name
func (m *Machine[T]) StateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
