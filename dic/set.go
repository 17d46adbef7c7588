package dic

import (
	"errors"
	"fmt"

	"github.com/morana-nlp/morana/dic/lexicon"
)

// ErrTooManyUserDictionaries is returned when more than 14 user
// dictionaries are added to a Set (the WordID format reserves only 4 bits
// for the dictionary index, with 0 taken by the system dictionary).
var ErrTooManyUserDictionaries = errors.New("dic: at most 14 user dictionaries are supported")

// Set composes one system dictionary and zero or more user dictionaries
// into the runtime "dictionary set" of spec.md §4.A. WordID space is
// partitioned by the top 4 bits; connection costs always come from the
// system grammar. NewSet appends the POS table of a user dictionary that
// carries a Grammar to the system POS list. Load reads no grammar for a
// user dictionary, so a loaded user dictionary adds no POS entries and
// its words' POS ids index the system table.
type Set struct {
	system *Dictionary
	users  []*Dictionary // index i lives at dictionary index i+1
}

// NewSet builds a dictionary set from one system dictionary and an
// ordered list of user dictionaries (first to last = lowest to highest
// dictionary index, matching config.user_dicts order).
func NewSet(system *Dictionary, users ...*Dictionary) (*Set, error) {
	if system.Grammar == nil {
		return nil, fmt.Errorf("dic: system dictionary has no grammar")
	}
	if len(users) > 14 {
		return nil, ErrTooManyUserDictionaries
	}
	s := &Set{system: system, users: append([]*Dictionary(nil), users...)}
	for _, u := range users {
		if u.Grammar != nil {
			s.system.Grammar.ExtendPos(u.Grammar.pos)
		}
	}
	return s, nil
}

// Grammar returns the system grammar shared by the whole set.
func (s *Set) Grammar() *Grammar { return s.system.Grammar }

// dictionaryAt returns the Dictionary addressed by a WordID's top 4 bits.
func (s *Set) dictionaryAt(idx uint8) (*Dictionary, bool) {
	if idx == 0 {
		return s.system, true
	}
	i := int(idx) - 1
	if i < 0 || i >= len(s.users) {
		return nil, false
	}
	return s.users[i], true
}

// CommonPrefixSearch runs a common-prefix lookup against every dictionary
// in the set, system first then users in stack order, reporting matches
// through visit with WordIDs already tagged by dictionary index.
func (s *Set) CommonPrefixSearch(key []byte, visit func(lexicon.Match)) {
	s.system.Lexicon.CommonPrefixSearch(key, 0, visit)
	for i, u := range s.users {
		u.Lexicon.CommonPrefixSearch(key, uint8(i+1), visit)
	}
}

// WordParam returns (left_id, right_id, cost) for a WordID spanning any
// dictionary in the set.
func (s *Set) WordParam(id WordID) (left, right uint16, cost int16, err error) {
	d, ok := s.dictionaryAt(id.DictionaryIndex())
	if !ok {
		return 0, 0, 0, fmt.Errorf("dic: no dictionary at index %d", id.DictionaryIndex())
	}
	left, right, cost = d.Lexicon.WordParam(id.Index())
	return left, right, cost, nil
}

// WordInfo returns the decoded word-info record for a WordID spanning any
// dictionary in the set.
func (s *Set) WordInfo(id WordID, subset lexicon.Subset) (lexicon.WordInfo, error) {
	d, ok := s.dictionaryAt(id.DictionaryIndex())
	if !ok {
		return lexicon.WordInfo{}, fmt.Errorf("dic: no dictionary at index %d", id.DictionaryIndex())
	}
	return d.Lexicon.WordInfo(id.Index(), subset)
}

// Pos returns the POS tuple for id, resolved against the (possibly
// user-extended) system POS table.
func (s *Set) Pos(id uint16) POS { return s.system.Grammar.Pos(id) }

// ConnectCost returns the connection cost between a left node's right-id
// and a right node's left-id, always from the system grammar.
func (s *Set) ConnectCost(left, right uint16) int16 {
	return s.system.Grammar.ConnectCost(left, right)
}
