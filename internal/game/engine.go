// Package game implements the tick-driven city-state simulation: the
// save-state aggregate, the three queue systems, the policy lifecycle,
// the modifier aggregator and the production tick. The engine is a pure
// state machine over an injected clock; it performs no I/O and holds no
// global state, so multiple instances coexist freely.
//
// Failed operations return false and leave the aggregate untouched.
// Callers branch on the boolean; the engine never panics or returns
// errors for validation failures.
package game

import (
	"strconv"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// refundFactor is the fraction of the recorded enqueue cost returned on
// cancellation.
const refundFactor = 0.75

// Engine applies operations to a single player's aggregate. Not safe
// for concurrent use; callers serialize access.
type Engine struct {
	catalog *catalog.Catalog
	clock   Clock
	state   *State
	events  []Event
}

// NewEngine wraps an existing aggregate. The caller keeps ownership of
// state only through the engine from here on.
func NewEngine(cat *catalog.Catalog, clock Clock, state *State) *Engine {
	e := &Engine{catalog: cat, clock: clock, state: state}
	e.seedMissions()
	return e
}

// NewGame creates a fresh aggregate with day-one missions initialized.
func NewGame(cat *catalog.Catalog, clock Clock) *Engine {
	return NewEngine(cat, clock, NewState(clock.Now()))
}

// State exposes the aggregate for snapshotting and persistence. Callers
// must not mutate it.
func (e *Engine) State() *State {
	return e.state
}

// DrainEvents returns the events accumulated since the last drain and
// clears the buffer.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// nextID mints a queue entry id unique within this aggregate.
func (e *Engine) nextID(prefix string) string {
	e.state.OrderSeq++
	return prefix + "-" + strconv.FormatInt(e.state.OrderSeq, 10)
}
