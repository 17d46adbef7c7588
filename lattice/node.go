// Package lattice builds the candidate-node lattice for one input buffer
// and runs the Viterbi-style shortest-path search that selects the
// minimum-cost segmentation, per spec.md §4.F.
package lattice

import "github.com/morana-nlp/morana/dic"

// Node is one candidate morpheme in the lattice.
type Node struct {
	Begin, End      int // byte offsets in the modified buffer
	WordID          dic.WordID
	LeftID, RightID uint16
	Cost            int16
	IsOOV           bool

	// NormalizedForm overrides the dictionary-resolved normalized form
	// for a node synthesized by a path rewriter (e.g. JoinNumeric's
	// canonical arabic representation) rather than looked up from a
	// WordInfo record. Empty for ordinary dictionary and OOV-provider
	// nodes, which resolve their normalized form the usual way.
	NormalizedForm string

	// BestPrev indexes into the node bucket ending at Begin (i.e.
	// nodesByEnd[Begin]) once the DP has run; -1 for BOS or if no
	// predecessor was found.
	BestPrev int
	// TotalCost is the minimum cumulative cost of any path from BOS to
	// this node, once the DP has run.
	TotalCost int
}

// Len returns the node's span in bytes.
func (n Node) Len() int { return n.End - n.Begin }
