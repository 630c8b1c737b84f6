package expect

import (
	"strings"
	"testing"

	"github.com/restspec/rest/packages/core/chain"
	"github.com/restspec/rest/packages/core/sentence"
	"github.com/restspec/rest/packages/core/source"
	"github.com/restspec/rest/packages/events"
	"github.com/restspec/rest/packages/output"
	"github.com/restspec/rest/packages/reporter"
)

// Expectation wraps a captured value for the lifetime of one fluent
// call sequence. It is mutated by every modifier and matcher call and
// must not be shared across goroutines or statements.
type Expectation struct {
	t        testing.TB
	subject  any
	record   *chain.Record
	negated  bool
	final    bool
	verified bool
	hooked   bool
}

// That begins an expectation bound to a test. A failing chain fails the
// test through t.Errorf.
func That(t testing.TB, v any) *Expectation {
	if t != nil {
		t.Helper()
	}
	return begin(t, v, "That", 1)
}

// Value begins an expectation outside a test context. Outcomes are
// reported through the event pipeline but never fail anything; use
// Verify to read the result.
func Value(v any) *Expectation {
	return begin(nil, v, "Value", 0)
}

func begin(t testing.TB, v any, fn string, argIndex int) *Expectation {
	reporter.Ensure()
	expr, ok := source.Expr(3, fn, argIndex)
	if !ok {
		expr = "value"
	}
	return &Expectation{
		t:       t,
		subject: v,
		record: &chain.Record{
			Expr:     cleanExpr(expr),
			Location: source.Location(3),
		},
		final: true,
	}
}

// cleanExpr strips reference decoration and flattens multi-line
// expressions for message use.
func cleanExpr(expr string) string {
	expr = strings.TrimLeft(expr, "&*")
	expr = strings.Join(strings.Fields(expr), " ")
	if expr == "" {
		return "value"
	}
	return expr
}

// As overrides the captured expression text.
func (e *Expectation) As(name string) *Expectation {
	e.record.Expr = cleanExpr(name)
	return e
}

// Not negates the next matcher only; it is consumed by that matcher.
func (e *Expectation) Not() *Expectation {
	e.negated = true
	return e
}

// And joins the previous matcher to the next with AND.
func (e *Expectation) And() *Expectation {
	return e.join(chain.OpAnd, "And")
}

// Or joins the previous matcher to the next with OR. Segments of
// AND-joined matchers are combined with OR, so the chain passes when
// any segment passes.
func (e *Expectation) Or() *Expectation {
	return e.join(chain.OpOr, "Or")
}

func (e *Expectation) join(op chain.LogicalOp, name string) *Expectation {
	if e.t != nil {
		e.t.Helper()
	}
	if len(e.record.Steps) == 0 {
		return e.usageError(name)
	}
	e.record.SetLastOp(op)
	e.final = false
	return e
}

// usageError records a loud failure for modifier misuse. This is an
// author-code defect, so it reports immediately instead of defaulting.
func (e *Expectation) usageError(modifier string) *Expectation {
	s := sentence.New("have", "a matcher before ."+modifier+"()")
	s.Subject = e.record.Expr
	e.record.Steps = append(e.record.Steps, chain.Step{Sentence: s, Passed: false})
	e.emit()
	if e.t != nil {
		e.t.Helper()
		e.t.Errorf("usage error at %s: .%s() called before any matcher", e.record.Location, modifier)
		e.verified = true
	}
	return e
}

// addStep evaluates one matcher result into the chain: negation is
// applied and consumed, the step is appended, and one event with the
// cumulative result is emitted.
func (e *Expectation) addStep(s sentence.Sentence, raw bool) *Expectation {
	if e.t != nil {
		e.t.Helper()
	}
	s = s.WithNegation(e.negated)
	s.Subject = e.record.Expr
	e.record.Steps = append(e.record.Steps, chain.Step{
		Sentence: s,
		Passed:   raw != e.negated,
	})
	e.negated = false
	e.final = true
	e.emit()
	e.hookFinalizer()
	return e
}

func (e *Expectation) emit() {
	rep := reporter.Ensure()
	kind := events.Failure
	if e.record.Result() {
		kind = events.Success
	}
	events.Emit(events.Event{
		Kind:    kind,
		Session: rep.SessionID(),
		Record:  e.record.Clone(),
	})
}

// hookFinalizer settles unverified chains at test end. Go has no
// destructor to evaluate a chain when its statement ends, so the host
// runner's cleanup hook plays that role; the recorded call site keeps
// the deferred message pointing at the right line.
func (e *Expectation) hookFinalizer() {
	if e.t == nil || e.hooked {
		return
	}
	e.hooked = true
	e.t.Cleanup(func() {
		if e.verified {
			return
		}
		e.verified = true
		if !e.record.Result() {
			e.t.Errorf("expectation failed at %s: %s", e.record.Location, output.Message(e.record))
		}
	})
}

// Verify settles the chain now and returns its cumulative result.
// Inside a test a false result fails the test immediately.
func (e *Expectation) Verify() bool {
	e.verified = true
	result := e.record.Result()
	if !result && e.t != nil {
		e.t.Helper()
		e.t.Errorf("expectation failed: %s", output.Message(e.record))
	}
	return result
}

// Result returns the cumulative chain result without settling it.
func (e *Expectation) Result() bool {
	return e.record.Result()
}

// Expr returns the captured subject expression text.
func (e *Expectation) Expr() string {
	return e.record.Expr
}
