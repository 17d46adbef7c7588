// Package pathrewrite implements the best-path post-processing plugins:
// numeric-sequence joining, katakana-OOV-chain joining, and the
// inhibited-connection mechanism (a connection-cost-matrix edit, not a
// per-path rewriter; see InhibitConnection).
package pathrewrite

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("pathrewrite")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
