package dic

import "github.com/npillmayer/schuko/tracing"

// tracer writes to the trace keyed 'dic'.
func tracer() tracing.Trace {
	return tracing.Select("dic")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
