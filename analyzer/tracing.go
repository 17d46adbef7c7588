// Package analyzer orchestrates the full analysis pipeline — input
// rewriting, candidate enumeration (dictionary lookup + OOV providers),
// the lattice shortest-path search, path rewriting, and mode A/B/C
// morpheme expansion — behind a single Tokenize/TokenizeSentences
// front end, per spec.md §4.H.
package analyzer

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("analyzer")
}
