package expect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/restspec/rest/packages/core/sentence"
)

// ToStartWith asserts a string subject has the given prefix.
func (e *Expectation) ToStartWith(prefix string) *Expectation {
	str, ok := e.subject.(string)
	s := sentence.New("start with", formatValue(prefix)).WithActual(e.subject)
	return e.addStep(s, ok && strings.HasPrefix(str, prefix))
}

// ToEndWith asserts a string subject has the given suffix.
func (e *Expectation) ToEndWith(suffix string) *Expectation {
	str, ok := e.subject.(string)
	s := sentence.New("end with", formatValue(suffix)).WithActual(e.subject)
	return e.addStep(s, ok && strings.HasSuffix(str, suffix))
}

// ToMatchPattern asserts a string subject matches the regular
// expression pattern. An invalid pattern is a failing step, not a
// panic.
func (e *Expectation) ToMatchPattern(pattern string) *Expectation {
	s := sentence.New("match", fmt.Sprintf("pattern /%s/", pattern)).WithActual(e.subject)
	re, err := regexp.Compile(pattern)
	if err != nil {
		s = s.WithQualifier("(invalid pattern)")
		return e.addStep(s, false)
	}
	str, ok := e.subject.(string)
	return e.addStep(s, ok && re.MatchString(str))
}
