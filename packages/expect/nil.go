package expect

import "github.com/restspec/rest/packages/core/sentence"

// ToBeNil asserts the subject is nil, including typed nil pointers,
// maps, slices and interfaces.
func (e *Expectation) ToBeNil() *Expectation {
	return e.addStep(sentence.New("be", "nil").WithActual(e.subject), isNilValue(e.subject))
}

// ToBePresent asserts the subject is non-nil.
func (e *Expectation) ToBePresent() *Expectation {
	return e.addStep(sentence.New("be", "present").WithActual(e.subject), !isNilValue(e.subject))
}
