package dic

import (
	"fmt"

	"github.com/morana-nlp/morana/dic/lexicon"
)

// Dictionary is one loaded system or user dictionary: its header, its
// grammar (system dictionaries only — spec.md §4.A: "user dictionary is
// identical except grammar is absent"), and its lexicon.
type Dictionary struct {
	Header  Header
	Grammar *Grammar // nil for a user dictionary
	Lexicon *lexicon.Lexicon
}

// Load parses a complete dictionary image: header, then (system
// dictionaries only) grammar, then lexicon.
func Load(data []byte) (*Dictionary, error) {
	header, offset, err := ParseHeader(data)
	if err != nil {
		tracer().Errorf("dic: header parse failed: %v", err)
		return nil, err
	}
	tracer().Debugf("dic: loaded header, version=%#x system=%v", uint64(header.Version), header.IsSystem())

	d := &Dictionary{Header: header}
	if header.IsSystem() {
		grammar, next, err := ParseGrammar(data, offset)
		if err != nil {
			tracer().Errorf("dic: grammar parse failed: %v", err)
			return nil, fmt.Errorf("dic: %w", err)
		}
		d.Grammar = grammar
		offset = next
	}

	lex, _, err := lexicon.Parse(data, offset)
	if err != nil {
		tracer().Errorf("dic: lexicon parse failed: %v", err)
		return nil, fmt.Errorf("dic: %w", err)
	}
	d.Lexicon = lex
	return d, nil
}
