package oov

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// entry is one unk.def line, resolved against the grammar.
type entry struct {
	LeftID, RightID uint16
	Cost            int16
	PosID           uint16
}

// MeCab is the char.def/unk.def driven OOV provider, porting the
// original's provide_oov_gen algorithm: at each offset it classifies the
// current character's categories, and for each category that declares
// OOV entries, emits group-length and incremental sub-length candidates
// per that category's invoke/group/length rule.
type MeCab struct {
	categories *charclass.Table
	oovList    map[charclass.Type][]entry
}

// SetUp parses char.def and unk.def, validating every unk.def line's
// left_id/right_id against grammar's connection matrix and its POS tuple
// against grammar's POS table.
func (m *MeCab) SetUp(charDef, unkDef io.Reader, grammar *dic.Grammar) error {
	categories, err := charclass.ReadDefinitions(charDef)
	if err != nil {
		return fmt.Errorf("oov: mecab: char.def: %w", err)
	}

	oovList := make(map[charclass.Type][]entry)
	r := csv.NewReader(unkDef)
	r.FieldsPerRecord = -1
	for lineNo := 1; ; lineNo++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: %w", lineNo, err)
		}
		if len(rec) != 10 {
			return fmt.Errorf("oov: mecab: unk.def: line %d: want 10 fields, got %d", lineNo, len(rec))
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		cat, ok := charclass.ParseName(rec[0])
		if !ok {
			return fmt.Errorf("oov: mecab: unk.def: line %d: unknown category %q", lineNo, rec[0])
		}
		left, err := parseID(rec[1])
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: left_id: %w", lineNo, err)
		}
		right, err := parseID(rec[2])
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: right_id: %w", lineNo, err)
		}
		leftID, err := grammar.CheckLeftID(left)
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: %w", lineNo, err)
		}
		rightID, err := grammar.CheckRightID(right)
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: %w", lineNo, err)
		}
		cost, err := strconv.ParseInt(rec[3], 10, 16)
		if err != nil {
			return fmt.Errorf("oov: mecab: unk.def: line %d: cost: %w", lineNo, err)
		}
		var pos [6]string
		copy(pos[:], rec[4:10])
		posID, ok := grammar.GetPosID(pos)
		if !ok {
			return fmt.Errorf("oov: mecab: unk.def: line %d: pos tuple %v not in grammar", lineNo, pos)
		}
		oovList[cat] = append(oovList[cat], entry{LeftID: leftID, RightID: rightID, Cost: int16(cost), PosID: posID})
	}

	m.categories = categories
	m.oovList = oovList
	return nil
}

func parseID(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// ProvideOOV is the exact provide_oov_gen port from
// original_source/plugin/oov/mecab_oov/mod.rs: see SPEC_FULL.md §4.E for
// the algorithm this mirrors, including the llength-- interaction with
// the following length loop that is reproduced exactly, not simplified.
func (m *MeCab) ProvideOOV(buf *inputtext.Buffer, offset int, hasOtherWords bool, out *[]lattice.Node) error {
	charLen := buf.CatContinuousLen(offset)
	if charLen == 0 {
		return nil
	}
	cat := buf.CatAt(offset)
	for _, ctype := range cat.Bits() {
		info, ok := m.categories.DefinitionOK(ctype)
		if !ok {
			continue
		}
		if !info.Invoke && hasOtherWords {
			continue
		}
		oovs, ok := m.oovList[ctype]
		if !ok {
			continue
		}
		llength := charLen
		if info.Group {
			emit(out, offset, offset+buf.CharDistance(offset, charLen), oovs)
			llength--
		}
		for i := 1; i <= int(info.Length); i++ {
			if i > llength {
				break
			}
			sublength := buf.CharDistance(offset, i)
			emit(out, offset, offset+sublength, oovs)
		}
	}
	return nil
}

func emit(out *[]lattice.Node, begin, end int, entries []entry) {
	for _, e := range entries {
		*out = append(*out, lattice.Node{
			Begin: begin, End: end,
			WordID: dic.OOV(uint32(e.PosID)),
			LeftID: e.LeftID, RightID: e.RightID, Cost: e.Cost,
			IsOOV: true,
		})
	}
}
