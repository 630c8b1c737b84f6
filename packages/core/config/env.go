package config

import (
	"os"
	"strings"
)

// Environment variables recognized by FromEnv.
const (
	EnvEnhancedOutput = "REST_ENHANCED_OUTPUT"
	EnvNoColor        = "REST_NO_COLOR"
	EnvASCIIOutput    = "REST_ASCII_OUTPUT"
	EnvShowSuccess    = "REST_SHOW_SUCCESS"
)

// Truthy reports whether an environment value means "enabled".
// Matching is case-insensitive; unrecognized values are false, so a
// malformed override degrades to the documented default instead of
// failing.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// FromEnv applies REST_* overrides to base. Variables that are unset
// leave the base value alone.
func FromEnv(base Config) Config {
	if v, ok := os.LookupEnv(EnvEnhancedOutput); ok {
		base.EnhancedOutput = Truthy(v)
	}
	if v, ok := os.LookupEnv(EnvNoColor); ok {
		base.UseColors = !Truthy(v)
	}
	if v, ok := os.LookupEnv(EnvASCIIOutput); ok {
		base.UnicodeSymbols = !Truthy(v)
	}
	if v, ok := os.LookupEnv(EnvShowSuccess); ok {
		base.ShowSuccessDetails = Truthy(v)
	}
	return base
}
