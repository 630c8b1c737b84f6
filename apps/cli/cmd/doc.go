// Package cmd implements the rest CLI commands using Cobra.
//
// Available commands:
//   - demo: Run a showcase of expectation chains with full output
//   - config: Print the resolved output configuration
//   - init: Create a .restrc.yaml configuration file
//   - version: Show rest version information
//
// The CLI exists for exploring the library's output formats; the
// library itself is consumed from test code.
package cmd
