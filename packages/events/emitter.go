// Package events is the publish point between assertion evaluation and
// its presentation. Evaluation emits one event per matcher call; any
// number of handlers consume them without knowing how the assertion was
// written.
package events

import (
	"sync"

	"github.com/restspec/rest/packages/core/chain"
)

// Kind classifies an event.
type Kind int

const (
	// Success is a cumulative pass for a chain so far.
	Success Kind = iota
	// Failure is a cumulative fail for a chain so far.
	Failure
	// FixtureFailure is a setup or teardown callback failure, attributed
	// to the fixture stage rather than a test body.
	FixtureFailure
	// SessionCompleted marks the end of a reporting session; Record is nil.
	SessionCompleted
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case FixtureFailure:
		return "fixture-failure"
	case SessionCompleted:
		return "session-completed"
	default:
		return "unknown"
	}
}

// Event is one assertion outcome. It is immutable once emitted; handlers
// that want to keep it past the call must do so themselves.
type Event struct {
	Kind    Kind
	Session string
	Record  *chain.Record
}

// Handler consumes events. A handler that panics propagates to the
// emitting call; the emitter deliberately does not recover, so a bug in
// a custom handler is never swallowed.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	id uint64
	e  *Emitter
}

// Cancel removes the handler. Cancelling twice is harmless.
func (s Subscription) Cancel() {
	if s.e != nil {
		s.e.unsubscribe(s.id)
	}
}

type entry struct {
	id      uint64
	handler Handler
}

// Emitter dispatches events synchronously, in subscription order.
type Emitter struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Subscribe(h Handler) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.entries = append(e.entries, entry{id: e.nextID, handler: h})
	return Subscription{id: e.nextID, e: e}
}

func (e *Emitter) unsubscribe(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, en := range e.entries {
		if en.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to every handler in subscription order. Handlers run
// outside the registry lock so they may subscribe or cancel freely.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	handlers := make([]Handler, len(e.entries))
	for i, en := range e.entries {
		handlers[i] = en.handler
	}
	e.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Default is the process-wide emitter used by the expectation engine.
var Default = NewEmitter()

func Subscribe(h Handler) Subscription { return Default.Subscribe(h) }

func Emit(ev Event) { Default.Emit(ev) }
