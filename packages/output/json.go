package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/restspec/rest/packages/core/chain"
)

// jsonReport is the machine-readable session summary.
type jsonReport struct {
	Session  string        `json:"session"`
	Time     string        `json:"time"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Failures []jsonFailure `json:"failures,omitempty"`
}

type jsonFailure struct {
	Expr     string     `json:"expr"`
	Location string     `json:"location,omitempty"`
	Message  string     `json:"message"`
	Steps    []jsonStep `json:"steps"`
}

type jsonStep struct {
	Phrase string `json:"phrase"`
	Passed bool   `json:"passed"`
	Op     string `json:"op,omitempty"`
	Actual string `json:"actual,omitempty"`
}

// WriteJSONSummary renders the session summary as indented JSON, for
// piping into other tooling.
func WriteJSONSummary(w io.Writer, s Summary) error {
	report := jsonReport{
		Session: s.SessionID,
		Time:    time.Now().Format(time.RFC3339),
		Passed:  s.Passed,
		Failed:  s.Failed,
	}
	for _, rec := range s.Failures {
		report.Failures = append(report.Failures, jsonFailureFrom(rec))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func jsonFailureFrom(rec *chain.Record) jsonFailure {
	f := jsonFailure{
		Expr:     rec.Expr,
		Location: rec.Location,
		Message:  Message(rec),
	}
	for _, step := range rec.Steps {
		f.Steps = append(f.Steps, jsonStep{
			Phrase: step.Sentence.FormatConjugated(rec.Expr),
			Passed: step.Passed,
			Op:     step.Op.String(),
			Actual: step.Sentence.Actual,
		})
	}
	return f
}
