package lattice

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("lattice")
}

func assert(condition bool, msg string) {
	if !condition {
		panic("lattice: assertion failed: " + msg)
	}
}
