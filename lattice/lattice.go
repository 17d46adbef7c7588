package lattice

import (
	"errors"
	"fmt"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/dic/lexicon"
	"github.com/morana-nlp/morana/inputtext"
)

// ErrUnreachable is returned when the search reaches the end of the
// buffer without ever connecting to EOS — every path was pruned because
// some stretch of the input produced no nodes at all (dictionary lookup
// empty and every OOV provider declined).
var ErrUnreachable = errors.New("lattice: no path reaches the end of input")

// DictionarySource is the subset of dic.Set the lattice needs to expand
// and cost candidate nodes.
type DictionarySource interface {
	CommonPrefixSearch(key []byte, visit func(lexicon.Match))
	WordParam(id dic.WordID) (left, right uint16, cost int16, err error)
	ConnectCost(left, right uint16) int16
}

// OOVProvider synthesizes candidate nodes that the dictionary lookup
// alone would miss. offset is a byte offset into buf.ModifiedBytes();
// hasOtherWords reports whether the dictionary lookup already produced
// at least one node beginning at offset. Implementations append their
// candidates to *out.
type OOVProvider interface {
	ProvideOOV(buf *inputtext.Buffer, offset int, hasOtherWords bool, out *[]Node) error
}

// Lattice holds, for every byte position that is a character boundary in
// the buffer, the nodes ending there — populated and cost-resolved by
// Build.
type Lattice struct {
	buf       *inputtext.Buffer
	nodesByEnd map[int][]Node
	eos       Node
	length    int
}

// Build enumerates every candidate node over buf (via dict and the given
// OOV providers, tried in order at every position) and runs the
// Viterbi search that assigns each node its minimum-cost predecessor.
func Build(dict DictionarySource, buf *inputtext.Buffer, providers []OOVProvider) (*Lattice, error) {
	positions := buf.Boundaries()
	assert(len(positions) > 0, "buffer has no boundaries")
	n := positions[len(positions)-1]

	l := &Lattice{buf: buf, nodesByEnd: make(map[int][]Node), length: n}
	l.nodesByEnd[0] = []Node{{Begin: 0, End: 0, WordID: dic.BOS, LeftID: dic.BOSEOSConnectionID, RightID: dic.BOSEOSConnectionID, BestPrev: -1, TotalCost: 0}}

	data := buf.ModifiedBytes()

	for _, p := range positions {
		if p == n {
			break // nothing begins at the final boundary
		}
		prevBucket := l.nodesByEnd[p]
		if len(prevBucket) == 0 {
			tracer().Debugf("lattice: position %d unreachable, no node ends here", p)
			continue
		}

		var created []Node
		hasOtherWords := false
		dict.CommonPrefixSearch(data[p:], func(m lexicon.Match) {
			left, right, cost, err := dict.WordParam(m.WordID)
			if err != nil {
				tracer().Errorf("lattice: word param for %v: %v", m.WordID, err)
				return
			}
			created = append(created, Node{
				Begin: p, End: p + m.Length, WordID: m.WordID,
				LeftID: left, RightID: right, Cost: cost,
			})
			hasOtherWords = true
		})

		for _, prov := range providers {
			if err := prov.ProvideOOV(buf, p, hasOtherWords, &created); err != nil {
				return nil, fmt.Errorf("lattice: oov provider at %d: %w", p, err)
			}
		}

		for _, node := range created {
			best, bestCost := selectBestPrev(prevBucket, node, dict)
			if best < 0 {
				continue // no viable predecessor; drop the node
			}
			node.BestPrev = best
			node.TotalCost = bestCost
			l.nodesByEnd[node.End] = append(l.nodesByEnd[node.End], node)
		}
	}

	finalBucket := l.nodesByEnd[n]
	eos := Node{Begin: n, End: n, WordID: dic.EOS, LeftID: dic.BOSEOSConnectionID, RightID: dic.BOSEOSConnectionID}
	best, bestCost := selectBestPrev(finalBucket, eos, dict)
	if best < 0 {
		return nil, ErrUnreachable
	}
	eos.BestPrev = best
	eos.TotalCost = bestCost
	l.eos = eos
	return l, nil
}

// selectBestPrev scans candidates (nodes ending where node begins) and
// returns the index of the lowest-cost predecessor for node, with ties
// broken by preferring the longer predecessor, then the predecessor with
// the smaller WordID. Returns (-1, 0) if candidates is empty.
func selectBestPrev(candidates []Node, node Node, dict DictionarySource) (int, int) {
	best := -1
	bestCost := 0
	for i, prev := range candidates {
		cand := prev.TotalCost + int(dict.ConnectCost(prev.RightID, node.LeftID)) + int(node.Cost)
		if best < 0 || cand < bestCost {
			best, bestCost = i, cand
			continue
		}
		if cand != bestCost {
			continue
		}
		cur := candidates[best]
		if prev.Len() > cur.Len() {
			best, bestCost = i, cand
		} else if prev.Len() == cur.Len() && prev.WordID < cur.WordID {
			best, bestCost = i, cand
		}
	}
	return best, bestCost
}

// BestPath returns the minimum-cost node sequence from just after BOS
// through just before EOS, in left-to-right order.
func (l *Lattice) BestPath() []Node {
	var rev []Node
	cur := l.eos
	bucket := l.nodesByEnd[l.length]
	for {
		if cur.BestPrev < 0 {
			break
		}
		prev := bucket[cur.BestPrev]
		if prev.WordID == dic.BOS {
			break
		}
		rev = append(rev, prev)
		bucket = l.nodesByEnd[prev.Begin]
		cur = prev
	}
	out := make([]Node, len(rev))
	for i, node := range rev {
		out[len(rev)-1-i] = node
	}
	return out
}

// TotalCost returns the cost of the best full path (BOS to EOS).
func (l *Lattice) TotalCost() int { return l.eos.TotalCost }
