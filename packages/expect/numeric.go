package expect

import (
	"fmt"

	"github.com/restspec/rest/packages/core/sentence"
)

func (e *Expectation) ToBePositive() *Expectation {
	f, ok := toFloat64(e.subject)
	return e.addStep(sentence.New("be", "positive").WithActual(e.subject), ok && f > 0)
}

func (e *Expectation) ToBeNegative() *Expectation {
	f, ok := toFloat64(e.subject)
	return e.addStep(sentence.New("be", "negative").WithActual(e.subject), ok && f < 0)
}

func (e *Expectation) ToBeZero() *Expectation {
	f, ok := toFloat64(e.subject)
	return e.addStep(sentence.New("be", "zero").WithActual(e.subject), ok && f == 0)
}

func (e *Expectation) ToBeGreaterThan(expected any) *Expectation {
	s := sentence.New("be", fmt.Sprintf("greater than %v", expected)).WithActual(e.subject)
	return e.addStep(s, e.compare(expected, func(a, b float64) bool { return a > b }))
}

func (e *Expectation) ToBeGreaterThanOrEqual(expected any) *Expectation {
	s := sentence.New("be", fmt.Sprintf("greater than or equal to %v", expected)).WithActual(e.subject)
	return e.addStep(s, e.compare(expected, func(a, b float64) bool { return a >= b }))
}

func (e *Expectation) ToBeLessThan(expected any) *Expectation {
	s := sentence.New("be", fmt.Sprintf("less than %v", expected)).WithActual(e.subject)
	return e.addStep(s, e.compare(expected, func(a, b float64) bool { return a < b }))
}

func (e *Expectation) ToBeLessThanOrEqual(expected any) *Expectation {
	s := sentence.New("be", fmt.Sprintf("less than or equal to %v", expected)).WithActual(e.subject)
	return e.addStep(s, e.compare(expected, func(a, b float64) bool { return a <= b }))
}

// ToBeInRange asserts lo <= subject < hi.
func (e *Expectation) ToBeInRange(lo, hi any) *Expectation {
	s := sentence.New("be", fmt.Sprintf("in range %v..%v", lo, hi)).WithActual(e.subject)
	f, ok := toFloat64(e.subject)
	lf, lok := toFloat64(lo)
	hf, hok := toFloat64(hi)
	return e.addStep(s, ok && lok && hok && f >= lf && f < hf)
}

func (e *Expectation) ToBeEven() *Expectation {
	n, ok := toInt(e.subject)
	return e.addStep(sentence.New("be", "even").WithActual(e.subject), ok && n%2 == 0)
}

func (e *Expectation) ToBeOdd() *Expectation {
	n, ok := toInt(e.subject)
	return e.addStep(sentence.New("be", "odd").WithActual(e.subject), ok && n%2 != 0)
}

func (e *Expectation) compare(expected any, cmp func(a, b float64) bool) bool {
	a, aok := toFloat64(e.subject)
	b, bok := toFloat64(expected)
	return aok && bok && cmp(a, b)
}
