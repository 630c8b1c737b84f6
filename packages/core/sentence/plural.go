package sentence

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// isPluralSubject guesses whether a subject expression names a plural
// thing. It is a spelling heuristic over the identifier, not a type
// check: singular nouns ending in "s" are mostly handled by
// singularization, but an identifier like "lens" will still be misread.
func isPluralSubject(subject string) bool {
	word := strings.ToLower(lastWord(baseName(subject)))
	if word == "" {
		return false
	}
	return inflection.Singular(word) != word
}

// baseName strips reference decoration and trailing accessors from an
// expression: "&items[0]" -> "items", "values.Len()" -> "values".
func baseName(expr string) string {
	expr = strings.TrimLeft(expr, "&*")
	if i := strings.IndexAny(expr, ".["); i >= 0 {
		expr = expr[:i]
	}
	return expr
}

// lastWord returns the final word of a snake_case or camelCase
// identifier: "my_values" -> "values", "userStatus" -> "Status".
func lastWord(ident string) string {
	if i := strings.LastIndex(ident, "_"); i >= 0 {
		ident = ident[i+1:]
	}
	last := 0
	for i, r := range ident {
		if i > 0 && unicode.IsUpper(r) {
			last = i
		}
	}
	return ident[last:]
}

// conjugate turns an infinitive matcher verb into its singular or
// plural present form. The verb set is controlled by the matcher
// library, so a small table plus default spelling rules is enough.
func conjugate(verb string, plural bool) string {
	switch verb {
	case "be":
		if plural {
			return "are"
		}
		return "is"
	case "have":
		if plural {
			return "have"
		}
		return "has"
	case "contain", "start with", "end with":
		if plural {
			return verb
		}
	default:
		if plural {
			return verb
		}
	}
	return singularPresent(verb)
}

func singularPresent(verb string) string {
	switch verb {
	case "be":
		return "is"
	case "have":
		return "has"
	}
	if i := strings.Index(verb, " "); i >= 0 {
		// Conjugate only the head of phrasal verbs like "start with".
		return singularPresent(verb[:i]) + verb[i:]
	}
	switch {
	case strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "x"),
		strings.HasSuffix(verb, "z"), strings.HasSuffix(verb, "sh"),
		strings.HasSuffix(verb, "ch"):
		return verb + "es"
	case strings.HasSuffix(verb, "y") && !hasVowelBeforeY(verb):
		return verb[:len(verb)-1] + "ies"
	default:
		return verb + "s"
	}
}

func hasVowelBeforeY(verb string) bool {
	if len(verb) < 2 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(verb[len(verb)-2]))
}
