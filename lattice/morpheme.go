package lattice

import (
	"errors"
	"fmt"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/dic/lexicon"
	"github.com/morana-nlp/morana/inputtext"
)

// ErrInvalidSplit is returned when a word's split list's summed
// head-word-lengths disagree with the parent node's span, per spec.md
// §4.F's mode-expansion invariant.
var ErrInvalidSplit = errors.New("lattice: split word lengths do not sum to parent span")

// Mode selects a segmentation granularity. ModeC reports the best path
// as-is; ModeA and ModeB replace each node by its splits_a/splits_b list.
type Mode int

const (
	ModeC Mode = iota
	ModeA
	ModeB
)

// InfoSource is the dictionary access morpheme construction needs beyond
// lattice.Build's DictionarySource: decoding word-info records and
// resolving POS ids to tuples. *dic.Set satisfies this directly.
type InfoSource interface {
	DictionarySource
	WordInfo(id dic.WordID, subset lexicon.Subset) (lexicon.WordInfo, error)
	Pos(id uint16) dic.POS
}

// Morpheme is one reported segment: a contiguous, non-overlapping slice
// of the original text plus its dictionary annotations.
type Morpheme struct {
	// BeginOrig, EndOrig are byte offsets into the original (pre-rewrite)
	// text; Surface is original[BeginOrig:EndOrig], satisfying spec.md
	// §8's invariant that concatenating every morpheme's original slice
	// reproduces the input exactly.
	BeginOrig, EndOrig int
	Surface            string

	NormalizedForm string
	ReadingForm    string
	DictionaryForm string

	PosID uint16
	Pos   dic.POS

	WordID dic.WordID
	// DictionaryIndex is 0 for the system dictionary, >=1 for a user
	// dictionary, -1 for an OOV node, per spec.md §6's output column.
	DictionaryIndex int
	IsOOV           bool

	SynonymGroupIDs []uint32
}

// MorphemeList is an immutable, indexable sequence of morphemes produced
// by one completed analysis, plus a reference to the dictionary and
// buffer it was built from. It borrows both; a MorphemeList must not
// outlive the *inputtext.Buffer it was built over if that buffer is
// reused by a later call (spec.md §5's aliasing note).
type MorphemeList struct {
	dict      InfoSource
	buf       *inputtext.Buffer
	morphemes []Morpheme
}

// Len returns the number of morphemes.
func (l *MorphemeList) Len() int { return len(l.morphemes) }

// At returns the morpheme at index i.
func (l *MorphemeList) At(i int) Morpheme { return l.morphemes[i] }

// Buffer returns the input buffer this list was built from.
func (l *MorphemeList) Buffer() *inputtext.Buffer { return l.buf }

// Split re-expands the morpheme at index i under mode (typically finer
// than the mode this list was built with), returning a new MorphemeList
// that aliases this list's *inputtext.Buffer rather than copying it: if
// that buffer is later reused by another output-parameter Tokenize call,
// the returned list is invalidated along with this one. Callers needing
// the split result to outlive the next Tokenize call must not reuse the
// buffer until they are done with it.
func (l *MorphemeList) Split(i int, mode Mode) (*MorphemeList, error) {
	m := l.morphemes[i]
	if m.IsOOV || mode == ModeC {
		return &MorphemeList{dict: l.dict, buf: l.buf, morphemes: []Morpheme{m}}, nil
	}
	begin, ok := l.buf.O2M(m.BeginOrig)
	if !ok {
		return nil, fmt.Errorf("lattice: split: begin %d is not a character boundary", m.BeginOrig)
	}
	end, ok := l.buf.O2M(m.EndOrig)
	if !ok {
		return nil, fmt.Errorf("lattice: split: end %d is not a character boundary", m.EndOrig)
	}
	left, right, cost, err := l.dict.WordParam(m.WordID)
	if err != nil {
		return nil, fmt.Errorf("lattice: split: %w", err)
	}
	node := Node{Begin: begin, End: end, WordID: m.WordID, LeftID: left, RightID: right, Cost: cost}
	expanded, err := expandNode(node, l.dict, mode)
	if err != nil {
		return nil, err
	}
	out := &MorphemeList{dict: l.dict, buf: l.buf}
	for _, n := range expanded {
		child, err := buildMorpheme(n, l.dict, l.buf)
		if err != nil {
			return nil, err
		}
		out.morphemes = append(out.morphemes, child)
	}
	return out, nil
}

// reset clears the list's backing slice for reuse without reallocating,
// per spec.md §5's output-parameter reuse convention.
func (l *MorphemeList) reset() {
	l.morphemes = l.morphemes[:0]
}

// BuildMorphemes expands path (the rewritten best path from a completed
// Lattice) into a MorphemeList under mode, reusing out if non-nil.
func BuildMorphemes(path []Node, dict InfoSource, buf *inputtext.Buffer, mode Mode, out *MorphemeList) (*MorphemeList, error) {
	if out == nil {
		out = &MorphemeList{}
	}
	out.dict = dict
	out.buf = buf
	out.reset()

	for _, node := range path {
		expanded, err := expandNode(node, dict, mode)
		if err != nil {
			return nil, err
		}
		for _, n := range expanded {
			m, err := buildMorpheme(n, dict, buf)
			if err != nil {
				return nil, err
			}
			out.morphemes = append(out.morphemes, m)
		}
	}
	return out, nil
}

// expandNode replaces node by its splits_a/splits_b children under mode,
// or returns node unchanged for ModeC, OOV nodes, and dictionary words
// with an empty split list for the requested mode.
func expandNode(node Node, dict InfoSource, mode Mode) ([]Node, error) {
	if mode == ModeC || node.WordID.IsSentinel() || node.WordID.IsOOV() {
		return []Node{node}, nil
	}
	info, err := dict.WordInfo(node.WordID, lexicon.SubsetSplits)
	if err != nil {
		return nil, fmt.Errorf("lattice: mode expansion: %w", err)
	}
	var splits []dic.WordID
	switch mode {
	case ModeA:
		splits = info.SplitsA
	case ModeB:
		splits = info.SplitsB
	}
	if len(splits) == 0 {
		return []Node{node}, nil
	}

	out := make([]Node, 0, len(splits))
	begin := node.Begin
	for _, childID := range splits {
		childInfo, err := dict.WordInfo(childID, 0)
		if err != nil {
			return nil, fmt.Errorf("lattice: mode expansion: child %v: %w", childID, err)
		}
		left, right, cost, err := dict.WordParam(childID)
		if err != nil {
			return nil, fmt.Errorf("lattice: mode expansion: child %v: %w", childID, err)
		}
		end := begin + childInfo.HeadWordLength
		out = append(out, Node{
			Begin: begin, End: end, WordID: childID,
			LeftID: left, RightID: right, Cost: cost,
		})
		begin = end
	}
	if begin != node.End {
		return nil, ErrInvalidSplit
	}
	return out, nil
}

// buildMorpheme decodes one final-path node (post mode-expansion) into a
// reported Morpheme, resolving its original-text span through buf and,
// for dictionary words, its full word-info record.
func buildMorpheme(node Node, dict InfoSource, buf *inputtext.Buffer) (Morpheme, error) {
	beginOrig, ok := buf.M2O(node.Begin)
	if !ok {
		return Morpheme{}, fmt.Errorf("lattice: node begin %d is not a character boundary", node.Begin)
	}
	endOrig, ok := buf.M2O(node.End)
	if !ok {
		return Morpheme{}, fmt.Errorf("lattice: node end %d is not a character boundary", node.End)
	}
	surface := buf.Original()[beginOrig:endOrig]

	m := Morpheme{
		BeginOrig: beginOrig, EndOrig: endOrig,
		Surface: surface,
		WordID:  node.WordID,
		IsOOV:   node.WordID.IsOOV(),
	}

	if m.IsOOV {
		m.DictionaryIndex = -1
		m.PosID = uint16(node.WordID.Index())
		m.Pos = dict.Pos(m.PosID)
		m.NormalizedForm = node.NormalizedForm
		if m.NormalizedForm == "" {
			m.NormalizedForm = surface
		}
		m.ReadingForm = surface
		m.DictionaryForm = surface
		return m, nil
	}

	m.DictionaryIndex = int(node.WordID.DictionaryIndex())
	info, err := dict.WordInfo(node.WordID, lexicon.SubsetAll)
	if err != nil {
		return Morpheme{}, fmt.Errorf("lattice: word info for %v: %w", node.WordID, err)
	}
	m.PosID = info.PosID
	m.Pos = dict.Pos(info.PosID)
	m.NormalizedForm = info.NormalizedForm
	m.ReadingForm = info.ReadingForm
	m.SynonymGroupIDs = info.SynonymGroupIDs

	if info.DictionaryFormWordID == node.WordID || info.DictionaryFormWordID == dic.Invalid {
		m.DictionaryForm = info.Surface
	} else {
		dictFormInfo, err := dict.WordInfo(info.DictionaryFormWordID, lexicon.SubsetSurface)
		if err != nil {
			return Morpheme{}, fmt.Errorf("lattice: dictionary form for %v: %w", node.WordID, err)
		}
		m.DictionaryForm = dictFormInfo.Surface
	}
	return m, nil
}
