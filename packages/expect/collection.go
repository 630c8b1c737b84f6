package expect

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/restspec/rest/packages/core/sentence"
)

// ToBeEmpty asserts a string, slice, array or map subject has length
// zero.
func (e *Expectation) ToBeEmpty() *Expectation {
	n := valueLength(e.subject)
	return e.addStep(sentence.New("be", "empty").WithActual(e.subject), n == 0)
}

// ToHaveLength asserts the subject's length.
func (e *Expectation) ToHaveLength(expected int) *Expectation {
	n := valueLength(e.subject)
	s := sentence.New("have", fmt.Sprintf("length %d", expected))
	if n >= 0 {
		s = s.WithActual(fmt.Sprintf("length %d", n))
	} else {
		s = s.WithActual(e.subject)
	}
	return e.addStep(s, n == expected)
}

// ToContain asserts a substring for string subjects, or an element for
// slice and array subjects.
func (e *Expectation) ToContain(item any) *Expectation {
	s := sentence.New("contain", formatValue(item)).WithActual(e.subject)
	if str, ok := e.subject.(string); ok {
		return e.addStep(s, strings.Contains(str, fmt.Sprintf("%v", item)))
	}
	return e.addStep(s, containsElement(e.subject, item))
}

// ToContainAllOf asserts every given element is present in the subject.
func (e *Expectation) ToContainAllOf(items ...any) *Expectation {
	s := sentence.New("contain", fmt.Sprintf("all of %v", items)).WithActual(e.subject)
	for _, item := range items {
		if !containsElement(e.subject, item) {
			return e.addStep(s, false)
		}
	}
	return e.addStep(s, true)
}

// ToEqualCollection asserts element-wise loose equality with expected,
// in order.
func (e *Expectation) ToEqualCollection(expected any) *Expectation {
	s := sentence.New("equal", fmt.Sprintf("collection %v", expected)).WithActual(e.subject)
	return e.addStep(s, collectionsEqual(e.subject, expected))
}

func collectionsEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !isSequence(av.Kind()) || !isSequence(bv.Kind()) || av.Len() != bv.Len() {
		return false
	}
	for i := 0; i < av.Len(); i++ {
		if !equalValues(av.Index(i).Interface(), bv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func isSequence(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}
