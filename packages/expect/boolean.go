package expect

import "github.com/restspec/rest/packages/core/sentence"

// ToBeTrue asserts the subject is the boolean true.
func (e *Expectation) ToBeTrue() *Expectation {
	b, ok := e.subject.(bool)
	return e.addStep(sentence.New("be", "true").WithActual(e.subject), ok && b)
}

// ToBeFalse asserts the subject is the boolean false.
func (e *Expectation) ToBeFalse() *Expectation {
	b, ok := e.subject.(bool)
	return e.addStep(sentence.New("be", "false").WithActual(e.subject), ok && !b)
}
