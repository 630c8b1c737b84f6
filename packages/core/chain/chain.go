// Package chain holds the data model for an expectation chain: the
// ordered matcher steps, the logical operators linking them, and the
// combination rule that turns step results into a chain result.
package chain

import "github.com/restspec/rest/packages/core/sentence"

// LogicalOp links a step to the step that follows it.
type LogicalOp int

const (
	OpNone LogicalOp = iota
	OpAnd
	OpOr
)

func (op LogicalOp) String() string {
	switch op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return ""
	}
}

// Step is one evaluated matcher: its sentence, its post-negation pass
// flag, and the operator connecting it to the next step.
type Step struct {
	Sentence sentence.Sentence
	Passed   bool
	Op       LogicalOp
}

// Record is the full evaluation trace of one chain. It is the payload
// carried by assertion events; handlers may retain it.
type Record struct {
	// Expr is the captured source expression of the subject, with
	// reference decoration stripped.
	Expr string
	// Location is the call site the chain was created at, "file:line".
	Location string
	Steps    []Step
}

// SetLastOp records the operator that will join the most recent step to
// the next one. It is a no-op on an empty record.
func (r *Record) SetLastOp(op LogicalOp) {
	if len(r.Steps) > 0 {
		r.Steps[len(r.Steps)-1].Op = op
	}
}

// Result combines step results into the chain verdict. Steps joined by
// AND form segments; segments are combined with OR. A missing operator
// between steps means AND. An empty record passes.
func (r *Record) Result() bool {
	if len(r.Steps) == 0 {
		return true
	}
	for _, seg := range r.Segments() {
		all := true
		for _, i := range seg {
			if !r.Steps[i].Passed {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Segments groups step indices into runs separated by OR operators.
func (r *Record) Segments() [][]int {
	var segments [][]int
	current := []int{0}
	for i := 1; i < len(r.Steps); i++ {
		if r.Steps[i-1].Op == OpOr {
			segments = append(segments, current)
			current = []int{i}
		} else {
			current = append(current, i)
		}
	}
	return append(segments, current)
}

// Clone returns a deep copy safe to hand to event handlers while the
// chain keeps appending steps.
func (r *Record) Clone() *Record {
	steps := make([]Step, len(r.Steps))
	copy(steps, r.Steps)
	return &Record{Expr: r.Expr, Location: r.Location, Steps: steps}
}
