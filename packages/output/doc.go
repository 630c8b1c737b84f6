// Package output renders assertion results for the console.
//
// The renderer is a plain event consumer: it knows the chain record
// model and the rendering options, nothing about how expectations are
// evaluated. Output goes to an injectable io.Writer so tests can
// capture it.
package output
