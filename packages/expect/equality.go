package expect

import (
	"reflect"

	"github.com/restspec/rest/packages/core/sentence"
)

// ToEqual asserts deep equality with expected, including types.
func (e *Expectation) ToEqual(expected any) *Expectation {
	s := sentence.New("equal", formatValue(expected)).WithActual(e.subject)
	return e.addStep(s, reflect.DeepEqual(e.subject, expected))
}

// ToEqualValue asserts loose equality: numeric kinds compare by value,
// so a JSON-decoded float64(3) equals int(3).
func (e *Expectation) ToEqualValue(expected any) *Expectation {
	s := sentence.New("equal", formatValue(expected)).WithQualifier("by value").WithActual(e.subject)
	return e.addStep(s, equalValues(e.subject, expected))
}
