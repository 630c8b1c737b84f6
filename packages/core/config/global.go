package config

import "sync"

// The process-wide config is shared by every chain and handler in the
// test process, so it sits behind a RWMutex; host runners execute tests
// in parallel by default.
var (
	mu          sync.RWMutex
	current     Config
	initialized bool
)

func resolve() Config {
	cfg, _, err := Discover(".", Default())
	if err != nil {
		// A malformed config file is non-fatal; fall back to defaults.
		cfg = Default()
	}
	return FromEnv(cfg)
}

// Current returns the effective configuration, resolving file and
// environment sources on first use.
func Current() Config {
	mu.RLock()
	if initialized {
		defer mu.RUnlock()
		return current
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		current = resolve()
		initialized = true
	}
	return current
}

// Set replaces the effective configuration.
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
	initialized = true
}

// Update applies fn to a copy of the effective configuration and
// installs the result.
func Update(fn func(*Config)) {
	cfg := Current()
	fn(&cfg)
	Set(cfg)
}

// Reset discards explicit settings; the next Current call re-resolves
// file and environment sources.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	initialized = false
}
