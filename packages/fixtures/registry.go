package fixtures

import (
	"strings"
	"sync"
)

// Func is a lifecycle callback. A panic inside a callback is recovered
// into an error by the runner.
type Func func() error

// Registry maps scope identifiers to their ordered lifecycle
// callbacks. It is safe for concurrent use; host runners register at
// init time but execute tests in parallel.
type Registry struct {
	mu        sync.Mutex
	beforeAll map[string][]Func
	setup     map[string][]Func
	teardown  map[string][]Func
	afterAll  map[string][]Func

	// entered tracks scopes whose BeforeAll stage already ran, in
	// execution order, so AfterAll can run in reverse.
	entered     map[string]bool
	enterOrder  []string
	afterAllRan map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		beforeAll:   make(map[string][]Func),
		setup:       make(map[string][]Func),
		teardown:    make(map[string][]Func),
		afterAll:    make(map[string][]Func),
		entered:     make(map[string]bool),
		afterAllRan: make(map[string]bool),
	}
}

func (r *Registry) BeforeAll(scope string, fn Func) { r.add(r.beforeAll, scope, fn) }

func (r *Registry) Setup(scope string, fn Func) { r.add(r.setup, scope, fn) }

func (r *Registry) TearDown(scope string, fn Func) { r.add(r.teardown, scope, fn) }

func (r *Registry) AfterAll(scope string, fn Func) { r.add(r.afterAll, scope, fn) }

func (r *Registry) add(m map[string][]Func, scope string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m[scope] = append(m[scope], fn)
}

// ancestors returns the scope chain outermost first:
// "a/b/c" -> ["a", "a/b", "a/b/c"].
func ancestors(scope string) []string {
	parts := strings.Split(scope, "/")
	chain := make([]string, 0, len(parts))
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], "/"))
	}
	return chain
}

var std = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return std }

func BeforeAll(scope string, fn Func) { std.BeforeAll(scope, fn) }

func Setup(scope string, fn Func) { std.Setup(scope, fn) }

func TearDown(scope string, fn Func) { std.TearDown(scope, fn) }

func AfterAll(scope string, fn Func) { std.AfterAll(scope, fn) }
