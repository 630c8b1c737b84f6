package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/restspec/rest/packages/core/chain"
	"github.com/restspec/rest/packages/core/config"
)

// Message builds the compound assertion message for a record: the
// subject expression followed by every step's conjugated phrase, joined
// by the operators that link them. The whole compound condition is
// named, not just the latest segment.
func Message(rec *chain.Record) string {
	if len(rec.Steps) == 0 {
		return "no assertions made"
	}
	var b strings.Builder
	b.WriteString(rec.Expr)
	b.WriteString(" ")
	b.WriteString(rec.Steps[0].Sentence.FormatConjugated(rec.Expr))
	for i := 1; i < len(rec.Steps); i++ {
		op := rec.Steps[i-1].Op.String()
		if op == "" {
			op = chain.OpAnd.String()
		}
		b.WriteString(" ")
		b.WriteString(op)
		b.WriteString(" ")
		b.WriteString(rec.Steps[i].Sentence.FormatConjugated(rec.Expr))
	}
	return b.String()
}

// Console renders records and session summaries.
type Console struct {
	writer io.Writer
	cfg    config.Config
	hasCfg bool
}

type Option func(*Console)

func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.writer = w }
}

func WithConfig(cfg config.Config) Option {
	return func(c *Console) {
		c.cfg = cfg
		c.hasCfg = true
	}
}

func NewConsole(opts ...Option) *Console {
	c := &Console{writer: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	if !c.hasCfg {
		c.cfg = config.Current()
	}
	return c
}

func (c *Console) paint(s string, attrs ...color.Attribute) string {
	if !c.cfg.UseColors {
		return s
	}
	painter := color.New(attrs...)
	painter.EnableColor()
	return painter.Sprint(s)
}

func (c *Console) glyphs() (pass, fail string) {
	if c.cfg.UnicodeSymbols {
		return "✓", "✗"
	}
	return "+", "-"
}

// SuccessLine renders a passing record, or "" when success details are
// suppressed.
func (c *Console) SuccessLine(rec *chain.Record) string {
	if !c.cfg.ShowSuccessDetails {
		return ""
	}
	pass, _ := c.glyphs()
	return c.paint(pass+" "+Message(rec), color.FgGreen)
}

// FailureHeader renders the one-line failure message for a record.
func (c *Console) FailureHeader(rec *chain.Record) string {
	_, fail := c.glyphs()
	return fail + " " + c.paint(Message(rec), color.FgRed, color.Bold)
}

// FailureDetails renders one line per step with its own verdict and,
// for failing steps, the recorded actual value.
func (c *Console) FailureDetails(rec *chain.Record) string {
	pass, fail := c.glyphs()
	var b strings.Builder
	for _, step := range rec.Steps {
		glyph := pass
		line := step.Sentence.FormatConjugated(rec.Expr)
		if !step.Passed {
			glyph = fail
			if step.Sentence.Actual != "" {
				line = fmt.Sprintf("%s (got %s)", line, step.Sentence.Actual)
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", glyph, line)
	}
	return b.String()
}

func (c *Console) PrintSuccess(rec *chain.Record) {
	if line := c.SuccessLine(rec); line != "" {
		fmt.Fprintln(c.writer, line)
	}
}

func (c *Console) PrintFailure(rec *chain.Record) {
	fmt.Fprintln(c.writer, c.FailureHeader(rec))
	if c.cfg.EnhancedOutput {
		fmt.Fprint(c.writer, c.FailureDetails(rec))
	}
}

// Summary is the session aggregate handed over by the reporter.
type Summary struct {
	SessionID string
	Passed    int
	Failed    int
	Failures  []*chain.Record
}

func (c *Console) PrintSummary(s Summary) {
	fmt.Fprintf(c.writer, "\nTest Results:\n")
	passed := fmt.Sprintf("%d passed", s.Passed)
	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Passed > 0 {
		passed = c.paint(passed, color.FgGreen)
	}
	if s.Failed > 0 {
		failed = c.paint(failed, color.FgRed, color.Bold)
	}
	fmt.Fprintf(c.writer, "  %s / %s\n", passed, failed)

	if len(s.Failures) > 0 {
		fmt.Fprintf(c.writer, "\nFailure Details:\n")
		for i, rec := range s.Failures {
			fmt.Fprintf(c.writer, "  %d. %s\n", i+1, c.FailureHeader(rec))
			for _, line := range strings.Split(strings.TrimRight(c.FailureDetails(rec), "\n"), "\n") {
				fmt.Fprintf(c.writer, "   %s\n", line)
			}
		}
	}
}
