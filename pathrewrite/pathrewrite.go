package pathrewrite

import (
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// Rewriter is the closed path-rewrite plugin interface (spec.md §9):
// post-process the best path against the buffer it was built from.
type Rewriter interface {
	Rewrite(path []lattice.Node, buf *inputtext.Buffer) ([]lattice.Node, error)
}
