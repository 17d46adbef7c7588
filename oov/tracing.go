// Package oov implements the out-of-vocabulary node providers that fill
// in lattice positions the dictionary lookup alone would miss: a
// MeCab-style char.def/unk.def driven provider, a regex-pattern provider,
// and a last-resort single-character provider.
package oov

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("oov")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
