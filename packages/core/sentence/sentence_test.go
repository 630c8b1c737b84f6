package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	s := New("be", "positive")
	assert.Equal(t, "be positive", s.Format())
	assert.Equal(t, "not be positive", s.WithNegation(true).Format())
}

func TestFormatGrammatical(t *testing.T) {
	s := New("be", "positive")
	assert.Equal(t, "be positive", s.FormatGrammatical())
	assert.Equal(t, "be not positive", s.WithNegation(true).FormatGrammatical())
}

func TestQualifiers(t *testing.T) {
	s := New("be", "in range").WithQualifier("[1, 10)")
	assert.Equal(t, "be in range [1, 10)", s.Format())

	// WithQualifier must not mutate the receiver.
	more := s.WithQualifier("(exclusive)")
	assert.Equal(t, "be in range [1, 10)", s.Format())
	assert.Equal(t, "be in range [1, 10) (exclusive)", more.Format())
}

func TestWithActual(t *testing.T) {
	s := New("be", "positive").WithActual(-3)
	assert.Equal(t, "-3", s.Actual)
}

func TestString(t *testing.T) {
	s := New("have", "length 3").WithNegation(true)
	assert.Equal(t, "not have length 3", s.String())
}

func TestFormatConjugated(t *testing.T) {
	tests := []struct {
		name    string
		verb    string
		object  string
		subject string
		negated bool
		want    string
	}{
		{name: "singular be", verb: "be", object: "positive", subject: "count", want: "is positive"},
		{name: "plural be", verb: "be", object: "positive", subject: "counts", want: "are positive"},
		{name: "singular have", verb: "have", object: "length 3", subject: "name", want: "has length 3"},
		{name: "plural have", verb: "have", object: "length 3", subject: "names", want: "have length 3"},
		{name: "singular contain", verb: "contain", object: "5", subject: "list", want: "contains 5"},
		{name: "plural contain", verb: "contain", object: "5", subject: "lists", want: "contain 5"},
		{name: "phrasal verb", verb: "start with", object: `"he"`, subject: "word", want: `starts with "he"`},
		{name: "match gets es", verb: "match", object: "the pattern", subject: "input", want: "matches the pattern"},
		{name: "negated singular", verb: "be", object: "even", subject: "value", negated: true, want: "is not even"},
		{name: "negated plural", verb: "be", object: "empty", subject: "items", negated: true, want: "are not empty"},
		{name: "status is singular", verb: "be", object: "active", subject: "status", want: "is active"},
		{name: "address is singular", verb: "be", object: "valid", subject: "address", want: "is valid"},
		{name: "entries is plural", verb: "be", object: "sorted", subject: "entries", want: "are sorted"},
		{name: "snake case last word", verb: "be", object: "set", subject: "my_values", want: "are set"},
		{name: "camel case last word", verb: "be", object: "known", subject: "userStatus", want: "is known"},
		{name: "accessor stripped", verb: "be", object: "empty", subject: "values.Len()", want: "are empty"},
		{name: "reference stripped", verb: "be", object: "ready", subject: "&server", want: "is ready"},
		{name: "empty subject", verb: "be", object: "true", subject: "", want: "is true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.verb, tt.object).WithNegation(tt.negated)
			assert.Equal(t, tt.want, s.FormatConjugated(tt.subject))
		})
	}
}

func TestSingularPresent(t *testing.T) {
	tests := []struct {
		verb string
		want string
	}{
		{"be", "is"},
		{"have", "has"},
		{"contain", "contains"},
		{"match", "matches"},
		{"pass", "passes"},
		{"fix", "fixes"},
		{"satisfy", "satisfies"},
		{"obey", "obeys"},
		{"start with", "starts with"},
		{"end with", "ends with"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, singularPresent(tt.verb), "verb %q", tt.verb)
	}
}
