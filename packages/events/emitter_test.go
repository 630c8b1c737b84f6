package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restspec/rest/packages/core/chain"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "failure", Failure.String())
	assert.Equal(t, "fixture-failure", FixtureFailure.String())
	assert.Equal(t, "session-completed", SessionCompleted.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestEmitDeliversInSubscriptionOrder(t *testing.T) {
	e := NewEmitter()
	var got []string
	e.Subscribe(func(Event) { got = append(got, "first") })
	e.Subscribe(func(Event) { got = append(got, "second") })
	e.Subscribe(func(Event) { got = append(got, "third") })

	e.Emit(Event{Kind: Success})

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestEmitCarriesPayload(t *testing.T) {
	e := NewEmitter()
	var got Event
	e.Subscribe(func(ev Event) { got = ev })

	rec := &chain.Record{Expr: "answer"}
	e.Emit(Event{Kind: Failure, Session: "s-1", Record: rec})

	assert.Equal(t, Failure, got.Kind)
	assert.Equal(t, "s-1", got.Session)
	assert.Same(t, rec, got.Record)
}

func TestCancel(t *testing.T) {
	e := NewEmitter()
	count := 0
	sub := e.Subscribe(func(Event) { count++ })

	e.Emit(Event{})
	sub.Cancel()
	e.Emit(Event{})
	sub.Cancel() // second cancel is harmless

	assert.Equal(t, 1, count)
}

func TestCancelLeavesOthersAlone(t *testing.T) {
	e := NewEmitter()
	var got []string
	first := e.Subscribe(func(Event) { got = append(got, "first") })
	e.Subscribe(func(Event) { got = append(got, "second") })

	first.Cancel()
	e.Emit(Event{})

	assert.Equal(t, []string{"second"}, got)
}

func TestHandlerMaySubscribeDuringEmit(t *testing.T) {
	e := NewEmitter()
	late := 0
	e.Subscribe(func(Event) {
		e.Subscribe(func(Event) { late++ })
	})

	e.Emit(Event{})
	assert.Equal(t, 0, late, "handler added mid-emit must not see the same event")

	e.Emit(Event{})
	assert.Equal(t, 1, late)
}

func TestConcurrentEmit(t *testing.T) {
	e := NewEmitter()
	var mu sync.Mutex
	count := 0
	e.Subscribe(func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e.Emit(Event{Kind: Success})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, count)
}
