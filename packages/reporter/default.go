package reporter

import (
	"os"
	"sync"

	"github.com/restspec/rest/packages/events"
	"github.com/restspec/rest/packages/output"
)

var (
	std     = New(os.Stdout)
	install sync.Once
)

// Ensure subscribes the default reporter to the default emitter. The
// expectation engine calls it before the first emission, so importing a
// custom handler setup is never required for plain usage. Idempotent.
func Ensure() *Reporter {
	install.Do(func() {
		events.Subscribe(std.Handle)
	})
	return std
}

// Default returns the process-wide reporter without subscribing it.
func Default() *Reporter { return std }

func ResetSession() string { return std.ResetSession() }

func Summarize() { std.Summarize() }

func SessionID() string { return std.SessionID() }

func Summary() output.Summary { return std.Summary() }

func Counts() (passed, failed int) { return std.Counts() }

func EnableDeduplication() { std.EnableDeduplication() }

func DisableDeduplication() { std.DisableDeduplication() }

func EnableSilentMode() { std.EnableSilentMode() }

func DisableSilentMode() { std.DisableSilentMode() }
