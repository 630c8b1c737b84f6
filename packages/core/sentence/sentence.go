package sentence

import (
	"fmt"
	"strings"
)

// Sentence is one assertion phrase: "<subject> <verb> <object> <qualifiers>".
type Sentence struct {
	Subject    string
	Verb       string
	Object     string
	Qualifiers []string
	Negated    bool
	Actual     string // rendered actual value, empty when not recorded
}

func New(verb, object string) Sentence {
	return Sentence{Verb: verb, Object: object}
}

func (s Sentence) WithNegation(negated bool) Sentence {
	s.Negated = negated
	return s
}

func (s Sentence) WithQualifier(qualifier string) Sentence {
	s.Qualifiers = append(append([]string(nil), s.Qualifiers...), qualifier)
	return s
}

// WithActual records the subject's actual value so failing steps can
// render "(got <actual>)".
func (s Sentence) WithActual(v any) Sentence {
	s.Actual = fmt.Sprintf("%v", v)
	return s
}

// Format renders the raw phrase with "not" before the infinitive verb.
func (s Sentence) Format() string {
	var b strings.Builder
	if s.Negated {
		b.WriteString("not ")
	}
	b.WriteString(s.Verb)
	b.WriteString(" ")
	b.WriteString(s.Object)
	s.writeQualifiers(&b)
	return b.String()
}

// FormatGrammatical places "not" after the verb, which reads better in
// rendered reports.
func (s Sentence) FormatGrammatical() string {
	var b strings.Builder
	b.WriteString(s.Verb)
	if s.Negated {
		b.WriteString(" not")
	}
	b.WriteString(" ")
	b.WriteString(s.Object)
	s.writeQualifiers(&b)
	return b.String()
}

// FormatConjugated renders the phrase with the verb conjugated to agree
// with the subject: "is positive" for "count", "are positive" for "counts".
func (s Sentence) FormatConjugated(subject string) string {
	verb := conjugate(s.Verb, isPluralSubject(subject))
	var b strings.Builder
	b.WriteString(verb)
	if s.Negated {
		b.WriteString(" not")
	}
	b.WriteString(" ")
	b.WriteString(s.Object)
	s.writeQualifiers(&b)
	return b.String()
}

func (s Sentence) writeQualifiers(b *strings.Builder) {
	if len(s.Qualifiers) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(s.Qualifiers, " "))
	}
}

func (s Sentence) String() string {
	return s.Format()
}
