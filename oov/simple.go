package oov

import (
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// Simple emits exactly one node of length one character with a fixed
// configured (left_id, right_id, cost, pos), unconditionally, at every
// position. It is the fallback-of-last-resort provider a configuration
// should always include so no input position is ever left unreachable.
type Simple struct {
	LeftID, RightID uint16
	Cost            int16
	PosID           uint16
}

// ProvideOOV always emits one single-character node.
func (s *Simple) ProvideOOV(buf *inputtext.Buffer, offset int, hasOtherWords bool, out *[]lattice.Node) error {
	n := buf.CharDistance(offset, 1)
	if n == 0 {
		return nil
	}
	*out = append(*out, lattice.Node{
		Begin: offset, End: offset + n,
		WordID: dic.OOV(uint32(s.PosID)),
		LeftID: s.LeftID, RightID: s.RightID, Cost: s.Cost,
		IsOOV: true,
	})
	return nil
}
