// Package reporter is the default event handler: it accumulates
// pass/fail counts per session and renders results through the console
// renderer.
//
// Reporter state is process-wide. Host runners execute tests in
// parallel, so every access goes through one mutex; the session reset
// hook is the host integration's responsibility to call at test-session
// boundaries.
package reporter

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/restspec/rest/packages/core/chain"
	"github.com/restspec/rest/packages/core/config"
	"github.com/restspec/rest/packages/events"
	"github.com/restspec/rest/packages/output"
)

type Reporter struct {
	mu        sync.Mutex
	sessionID string
	passed    int
	failed    int
	failures  []*chain.Record
	seen      map[string]struct{}
	dedupe    bool
	silent    bool
	writer    io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{
		sessionID: uuid.NewString(),
		seen:      make(map[string]struct{}),
		dedupe:    true,
		writer:    w,
	}
}

// Handle consumes one assertion event. It is safe to call from parallel
// test goroutines; rendering happens outside the lock, so line ordering
// across concurrent tests is not guaranteed, only the counts are.
func (r *Reporter) Handle(ev events.Event) {
	if ev.Kind == events.SessionCompleted || ev.Record == nil {
		return
	}

	key := ev.Kind.String() + " " + output.Message(ev.Record)

	r.mu.Lock()
	switch ev.Kind {
	case events.Success:
		r.passed++
	case events.Failure, events.FixtureFailure:
		r.failed++
		r.failures = append(r.failures, ev.Record)
	}
	report := !r.silent
	if report && r.dedupe {
		if _, dup := r.seen[key]; dup {
			report = false
		} else {
			r.seen[key] = struct{}{}
		}
	}
	writer := r.writer
	r.mu.Unlock()

	if !report {
		return
	}
	console := output.NewConsole(output.WithWriter(writer), output.WithConfig(config.Current()))
	if ev.Kind == events.Success {
		console.PrintSuccess(ev.Record)
	} else {
		console.PrintFailure(ev.Record)
	}
}

// ResetSession starts a new reporting window: counters, retained
// failures and the dedup cache are cleared. Returns the new session ID.
func (r *Reporter) ResetSession() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessionID = uuid.NewString()
	r.passed = 0
	r.failed = 0
	r.failures = nil
	r.seen = make(map[string]struct{})
	return r.sessionID
}

// Summarize renders the session summary and emits SessionCompleted.
// The dedup cache is cleared and deduplication re-enabled.
func (r *Reporter) Summarize() {
	r.mu.Lock()
	summary := output.Summary{
		SessionID: r.sessionID,
		Passed:    r.passed,
		Failed:    r.failed,
		Failures:  append([]*chain.Record(nil), r.failures...),
	}
	session := r.sessionID
	writer := r.writer
	r.seen = make(map[string]struct{})
	r.dedupe = true
	r.mu.Unlock()

	console := output.NewConsole(output.WithWriter(writer), output.WithConfig(config.Current()))
	console.PrintSummary(summary)
	events.Emit(events.Event{Kind: events.SessionCompleted, Session: session})
}

func (r *Reporter) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// Summary snapshots the session aggregate without ending the session.
func (r *Reporter) Summary() output.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return output.Summary{
		SessionID: r.sessionID,
		Passed:    r.passed,
		Failed:    r.failed,
		Failures:  append([]*chain.Record(nil), r.failures...),
	}
}

// Counts returns the session's pass and fail totals.
func (r *Reporter) Counts() (passed, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passed, r.failed
}

func (r *Reporter) EnableDeduplication() { r.setDedupe(true) }

func (r *Reporter) DisableDeduplication() { r.setDedupe(false) }

func (r *Reporter) setDedupe(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dedupe = on
}

// EnableSilentMode suppresses rendering while still counting outcomes.
func (r *Reporter) EnableSilentMode() { r.setSilent(true) }

func (r *Reporter) DisableSilentMode() { r.setSilent(false) }

func (r *Reporter) setSilent(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.silent = on
}

// SetWriter redirects rendered output, mainly for tests.
func (r *Reporter) SetWriter(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writer = w
}
