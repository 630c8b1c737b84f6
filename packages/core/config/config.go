package config

// Config is the read-only option set consulted when results are
// rendered.
type Config struct {
	// EnhancedOutput enables per-step detail lines and sentence-style
	// failure messages.
	EnhancedOutput bool
	// UseColors enables ANSI colors in console output.
	UseColors bool
	// UnicodeSymbols selects the unicode glyphs over the ASCII +/-.
	UnicodeSymbols bool
	// ShowSuccessDetails prints a line for passing assertions too.
	ShowSuccessDetails bool
}

// Default returns the built-in option values.
func Default() Config {
	return Config{
		EnhancedOutput:     false,
		UseColors:          true,
		UnicodeSymbols:     true,
		ShowSuccessDetails: false,
	}
}
