// Package sentence models the human-readable phrase an assertion renders as.
//
// A sentence is built from a subject (the captured expression text), an
// infinitive verb, an object and optional qualifiers. It can be formatted
// raw ("not be positive"), grammatically ("be not positive") or conjugated
// against the subject's plurality ("is not positive" / "are not positive").
package sentence
