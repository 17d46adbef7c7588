package pathrewrite

import (
	"unicode/utf8"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// JoinKatakanaOov merges a run of katakana nodes into one OOV node with
// the configured POS, per spec.md §4.G, grounded on original_source's
// join_katakana_oov/mod.rs: a node triggers a join if it is OOV or
// shorter than MinLength and its category is katakana; the window then
// expands both backward and forward from the trigger over every
// adjacent katakana node (OOV or not), and is trimmed from its leading
// edge of any node whose first character carries NOOOVBOW/NOOOVBOW2.
// The remaining window is merged only if it still holds at least two
// nodes; its total length is not compared with MinLength.
type JoinKatakanaOov struct {
	MinLength int
	PosID     uint16
	Cost      int16
}

func isKatakanaNode(node lattice.Node, buf *inputtext.Buffer) bool {
	return buf.CatAt(node.Begin).Has(charclass.Katakana)
}

func isShorterThan(node lattice.Node, buf *inputtext.Buffer, minLength int) bool {
	return utf8.RuneCount(buf.ModifiedBytes()[node.Begin:node.End]) < minLength
}

func (jk *JoinKatakanaOov) Rewrite(path []lattice.Node, buf *inputtext.Buffer) ([]lattice.Node, error) {
	out := append([]lattice.Node(nil), path...)

	i := 0
	for i < len(out) {
		node := out[i]
		triggers := (node.IsOOV || isShorterThan(node, buf, jk.MinLength)) && isKatakanaNode(node, buf)
		if !triggers {
			i++
			continue
		}

		begin := i
		for begin > 0 && isKatakanaNode(out[begin-1], buf) {
			begin--
		}
		end := i + 1
		for end < len(out) && isKatakanaNode(out[end], buf) {
			end++
		}
		for begin < end && buf.CatAt(out[begin].Begin).Any(charclass.NoOOVBOW|charclass.NoOOVBOW2) {
			begin++
		}

		if end-begin > 1 {
			merged := concatOOVNodes(out[begin:end], jk.PosID, jk.Cost)
			tail := append([]lattice.Node{merged}, out[end:]...)
			out = append(out[:begin], tail...)
			// the node right after the merged one is already known not
			// to be a joinable katakana node; skip re-checking it.
			i = begin + 1
		}
		i++
	}
	return out, nil
}

// concatOOVNodes merges a contiguous run of nodes into one OOV node,
// spanning the whole run with the given configured POS and cost,
// mirroring the original's concat_oov_nodes helper.
func concatOOVNodes(nodes []lattice.Node, posID uint16, cost int16) lattice.Node {
	first, last := nodes[0], nodes[len(nodes)-1]
	return lattice.Node{
		Begin: first.Begin, End: last.End,
		WordID:  dic.OOV(uint32(posID)),
		LeftID:  first.LeftID,
		RightID: last.RightID,
		Cost:    cost,
		IsOOV:   true,
	}
}
