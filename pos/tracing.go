// Package pos compiles POS-tuple predicates into bit sets for fast
// per-morpheme membership checks, per spec.md §4.J.
package pos

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("pos")
}
