// Package textproc uppercases and line-numbers text files.
//
// Transform is the pure core. Processor wraps it with the file checks and
// atomic write used by the interactive Session and the HTTP handler.
package textproc
