// Package config handles the rendering options for rest.
//
// Options affect only how results are presented, never whether an
// expectation passes. Resolution order, weakest first:
//   - built-in defaults
//   - a .restrc.yaml / .restrc.json file in the working directory
//   - REST_* environment variables
//   - explicit Set / Update calls
package config
