// Package lexicon implements the lexicon block of a dictionary: the
// double-array trie over surface-form bytes, the word-id table attached to
// each trie terminal, the word-parameter table, and the word-info table.
package lexicon

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/internal/dat"
)

var errBounds = errors.New("lexicon: block truncated")

// Lexicon exposes the random-access lexicon contract from spec.md §4.A:
// CommonPrefixSearch, WordParam, WordInfo.
type Lexicon struct {
	trie   *dat.Trie
	params *WordParamTable
	infos  *WordInfoTable
}

// Parse reads "encoded trie (whose value records hold each surface's
// word-id list); u32 word_count; word-parameter table i16[3*word_count];
// word-info table (offsets + records)" starting at offset, returning the
// lexicon and the offset immediately after it.
func Parse(data []byte, offset int) (*Lexicon, int, error) {
	trie, offset, err := parseTrie(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("lexicon: trie: %w", err)
	}
	wordCount, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("lexicon: word count: %w", err)
	}
	params, offset, err := parseWordParams(data, offset, int(wordCount))
	if err != nil {
		return nil, 0, fmt.Errorf("lexicon: word params: %w", err)
	}
	infos, offset, err := parseWordInfos(data, offset, int(wordCount))
	if err != nil {
		return nil, 0, fmt.Errorf("lexicon: word info: %w", err)
	}
	return &Lexicon{trie: trie, params: params, infos: infos}, offset, nil
}

// Match is one result of CommonPrefixSearch: a candidate word id and the
// byte length of the surface it matched.
type Match struct {
	WordID dic.WordID
	Length int
}

// CommonPrefixSearch finds every dictionary entry whose surface form is a
// byte-prefix of key, calling visit once per (word id, length) pair — a
// surface with homographs yields one call per homograph, all reporting the
// same length. dictIndex is stamped into every reported WordID.
func (l *Lexicon) CommonPrefixSearch(key []byte, dictIndex uint8, visit func(Match)) {
	l.trie.CommonPrefixSearch(key, func(state uint32, length int) {
		for _, raw := range l.trie.ReadValues(l.trie.ValueOff[state]) {
			visit(Match{WordID: dic.NewWordID(dictIndex, raw), Length: length})
		}
	})
}

// WordParam returns (left_id, right_id, cost) for a word index local to
// this lexicon (i.e. WordID.Index(), not the full WordID).
func (l *Lexicon) WordParam(index uint32) (left, right uint16, cost int16) {
	return l.params.Get(index)
}

// Subset selects which WordInfo string fields a caller needs. The whole
// record is still decoded; fields outside the subset are left at their
// zero value in the returned WordInfo.
type Subset uint8

const (
	SubsetSurface Subset = 1 << iota
	SubsetNormalizedForm
	SubsetReadingForm
	SubsetDictionaryForm
	SubsetSplits
	SubsetSynonymGroups

	SubsetAll Subset = SubsetSurface | SubsetNormalizedForm | SubsetReadingForm |
		SubsetDictionaryForm | SubsetSplits | SubsetSynonymGroups
)

// WordInfo is a word-info table record for one dictionary word index.
type WordInfo struct {
	Surface             string
	HeadWordLength       int // bytes
	PosID                uint16
	NormalizedForm       string
	DictionaryFormWordID dic.WordID // may equal this word's own id
	ReadingForm          string
	SplitsA              []dic.WordID
	SplitsB              []dic.WordID
	WordStructure        []dic.WordID
	SynonymGroupIDs      []uint32
}

// WordInfo decodes the record for a word index local to this lexicon,
// applying subset to decide which fields are populated in the result (all
// bytes are still scanned to find record boundaries; subset only prunes
// what gets copied into the returned struct).
func (l *Lexicon) WordInfo(index uint32, subset Subset) (WordInfo, error) {
	return l.infos.Get(index, subset)
}

func readU32(data []byte, offset int) (uint32, int, error) {
	if offset+4 > len(data) {
		return 0, 0, errBounds
	}
	return binary.LittleEndian.Uint32(data[offset:]), offset + 4, nil
}
