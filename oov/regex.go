package oov

import (
	"regexp"
	"unicode/utf8"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// Regex synthesizes one OOV node per regex match anchored at a lattice
// position, per original_source/plugin/oov/regex_oov/mod.rs.
type Regex struct {
	// Pattern is matched anchored at the start of the window; callers
	// should not include a leading "^", it is added by SetUp.
	Pattern   string
	MaxLength int // in code points
	LeftID    uint16
	RightID   uint16
	Cost      int16
	PosID     uint16

	re *regexp.Regexp
}

// SetUp compiles Pattern, anchoring it at the start of the match window.
func (r *Regex) SetUp() error {
	re, err := regexp.Compile("^(?:" + r.Pattern + ")")
	if err != nil {
		return err
	}
	r.re = re
	return nil
}

// ProvideOOV matches Pattern against a window of at most MaxLength code
// points starting at offset, skipping positions strictly inside a
// category run (a discontinuity check) and positions another candidate
// already covers with the same end offset.
func (r *Regex) ProvideOOV(buf *inputtext.Buffer, offset int, hasOtherWords bool, out *[]lattice.Node) error {
	if offset > 0 {
		b := buf.ModifiedBytes()
		prev := offset - 1
		for prev > 0 && !utf8.RuneStart(b[prev]) {
			prev--
		}
		if buf.CatContinuousLen(offset)+1 == buf.CatContinuousLen(prev) {
			return nil
		}
	}

	window := buf.CharDistance(offset, r.MaxLength)
	data := buf.ModifiedBytes()
	end := offset + window
	if end > len(data) {
		end = len(data)
	}

	loc := r.re.FindIndex(data[offset:end])
	if loc == nil || loc[0] != 0 {
		return nil
	}
	matchEnd := offset + loc[1]

	if hasWord(*out, matchEnd) {
		return nil
	}

	*out = append(*out, lattice.Node{
		Begin: offset, End: matchEnd,
		WordID: dic.OOV(uint32(r.PosID)),
		LeftID: r.LeftID, RightID: r.RightID, Cost: r.Cost,
		IsOOV: true,
	})
	return nil
}

func hasWord(nodes []lattice.Node, end int) bool {
	for _, n := range nodes {
		if n.End == end {
			return true
		}
	}
	return false
}
