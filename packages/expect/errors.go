package expect

import (
	"errors"
	"fmt"

	"github.com/restspec/rest/packages/core/sentence"
)

// ToBeOK asserts an error subject is nil.
func (e *Expectation) ToBeOK() *Expectation {
	s := sentence.New("be", "ok").WithActual(e.subject)
	if e.subject == nil {
		return e.addStep(s, true)
	}
	err, ok := e.subject.(error)
	return e.addStep(s, ok && isNilValue(err))
}

// ToBeError asserts an error subject is non-nil.
func (e *Expectation) ToBeError() *Expectation {
	s := sentence.New("be", "an error").WithActual(e.subject)
	err, ok := e.subject.(error)
	return e.addStep(s, ok && !isNilValue(err))
}

// ToMatchError asserts the subject is an error matching target per
// errors.Is.
func (e *Expectation) ToMatchError(target error) *Expectation {
	s := sentence.New("match", fmt.Sprintf("error %q", target)).WithActual(e.subject)
	err, ok := e.subject.(error)
	return e.addStep(s, ok && errors.Is(err, target))
}
