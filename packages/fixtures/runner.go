package fixtures

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/restspec/rest/packages/core/chain"
	"github.com/restspec/rest/packages/core/sentence"
	"github.com/restspec/rest/packages/events"
	"github.com/restspec/rest/packages/reporter"
)

var fixtureDepth atomic.Int32

// InFixtureTest reports whether a fixture-wrapped test body is
// currently executing anywhere in the process.
func InFixtureTest() bool {
	return fixtureDepth.Load() > 0
}

// Run executes body wrapped in the lifecycle of scope and its
// ancestors: BeforeAll (once per scope), then Setup outer scope first,
// then body, then TearDown inner scope first. Teardown runs
// unconditionally, including when body panics or fails the test; a
// failing setup skips the body but still tears down whatever was set
// up.
func (r *Registry) Run(t testing.TB, scope string, body func()) {
	if t != nil {
		t.Helper()
	}
	scopes := ancestors(scope)
	r.runBeforeAll(t, scopes)

	entered, failedScope, setupErr := r.runSetup(scopes)
	defer r.runTeardown(t, entered)

	if setupErr != nil {
		r.reportFailure(t, failedScope, "setup", setupErr)
		return
	}

	fixtureDepth.Add(1)
	defer fixtureDepth.Add(-1)
	body()
}

// runBeforeAll runs the BeforeAll callbacks of every scope in the chain
// that has not been entered yet, outermost first. The once-flags are
// process-wide: scopes are static, not per-test.
func (r *Registry) runBeforeAll(t testing.TB, scopes []string) {
	r.mu.Lock()
	var pending []string
	for _, s := range scopes {
		if !r.entered[s] {
			r.entered[s] = true
			r.enterOrder = append(r.enterOrder, s)
			pending = append(pending, s)
		}
	}
	callbacks := make(map[string][]Func, len(pending))
	for _, s := range pending {
		callbacks[s] = append([]Func(nil), r.beforeAll[s]...)
	}
	r.mu.Unlock()

	for _, s := range pending {
		for _, fn := range callbacks[s] {
			if err := safeCall(fn); err != nil {
				r.reportFailure(t, s, "before-all", err)
			}
		}
	}
}

// runSetup runs Setup callbacks outer scope first and stops at the
// first failure. It returns the scopes entered so far (which all need
// teardown), the scope that failed, and the failure.
func (r *Registry) runSetup(scopes []string) (entered []string, failedScope string, err error) {
	for _, s := range scopes {
		entered = append(entered, s)
		r.mu.Lock()
		callbacks := append([]Func(nil), r.setup[s]...)
		r.mu.Unlock()
		for _, fn := range callbacks {
			if callErr := safeCall(fn); callErr != nil {
				return entered, s, callErr
			}
		}
	}
	return entered, "", nil
}

// runTeardown runs TearDown callbacks inner scope first, in
// registration order within a scope. A failing callback is reported
// and does not cancel its siblings.
func (r *Registry) runTeardown(t testing.TB, entered []string) {
	for i := len(entered) - 1; i >= 0; i-- {
		s := entered[i]
		r.mu.Lock()
		callbacks := append([]Func(nil), r.teardown[s]...)
		r.mu.Unlock()
		for _, fn := range callbacks {
			if err := safeCall(fn); err != nil {
				r.reportFailure(t, s, "teardown", err)
			}
		}
	}
}

// RunAfterAll runs the AfterAll callbacks of every scope that was
// entered, innermost-entered first, reverse registration order within
// a scope. Each scope's callbacks run at most once per process.
func (r *Registry) RunAfterAll() {
	r.mu.Lock()
	var order []string
	for i := len(r.enterOrder) - 1; i >= 0; i-- {
		s := r.enterOrder[i]
		if !r.afterAllRan[s] {
			r.afterAllRan[s] = true
			order = append(order, s)
		}
	}
	callbacks := make(map[string][]Func, len(order))
	for _, s := range order {
		callbacks[s] = append([]Func(nil), r.afterAll[s]...)
	}
	r.mu.Unlock()

	for _, s := range order {
		fns := callbacks[s]
		for i := len(fns) - 1; i >= 0; i-- {
			if err := safeCall(fns[i]); err != nil {
				r.reportFailure(nil, s, "after-all", err)
			}
		}
	}
}

// reportFailure attributes a callback failure to its fixture stage: it
// is published as a fixture-failure event and, inside a test, fails
// the test.
func (r *Registry) reportFailure(t testing.TB, scope, stage string, err error) {
	rec := &chain.Record{
		Expr: scope,
		Steps: []chain.Step{{
			Sentence: sentence.Sentence{
				Subject: scope,
				Verb:    "complete",
				Object:  stage,
				Actual:  err.Error(),
			},
		}},
	}
	rep := reporter.Ensure()
	events.Emit(events.Event{
		Kind:    events.FixtureFailure,
		Session: rep.SessionID(),
		Record:  rec,
	})
	if t != nil {
		t.Helper()
		t.Errorf("fixture %s failed for scope %q: %v", stage, scope, err)
	}
}

func safeCall(fn Func) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}

// Run wraps body in the lifecycle registered for scope on the default
// registry.
func Run(t testing.TB, scope string, body func()) {
	if t != nil {
		t.Helper()
	}
	std.Run(t, scope, body)
}

// RunAfterAll flushes pending AfterAll callbacks on the default
// registry.
func RunAfterAll() { std.RunAfterAll() }

// TestMain runs the suite, flushes AfterAll callbacks once every test
// has finished, and exits. Call it from the package's TestMain.
func TestMain(m *testing.M) {
	code := m.Run()
	RunAfterAll()
	os.Exit(code)
}

// Scope binds a scope identifier so a test module can register and run
// against it without repeating the name.
type Scope struct {
	id  string
	reg *Registry
}

// Module returns a Scope bound to the default registry.
func Module(id string) *Scope {
	return &Scope{id: id, reg: std}
}

func (s *Scope) BeforeAll(fn Func) { s.reg.BeforeAll(s.id, fn) }

func (s *Scope) Setup(fn Func) { s.reg.Setup(s.id, fn) }

func (s *Scope) TearDown(fn Func) { s.reg.TearDown(s.id, fn) }

func (s *Scope) AfterAll(fn Func) { s.reg.AfterAll(s.id, fn) }

func (s *Scope) Run(t testing.TB, body func()) {
	if t != nil {
		t.Helper()
	}
	s.reg.Run(t, s.id, body)
}
