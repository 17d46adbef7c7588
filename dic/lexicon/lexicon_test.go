package lexicon_test

import (
	"reflect"
	"testing"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/dic/lexicon"
	"github.com/morana-nlp/morana/internal/dictest"
)

func TestWordInfoSubset(t *testing.T) {
	data := dictest.Lexicon([]dictest.LexiconEntry{
		{Surface: "猫", PosID: 5, LeftID: 0, RightID: 0, Cost: 10, Reading: "ネコ"},
	})
	lex, n, err := lexicon.Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n != len(data) {
		t.Fatalf("Parse consumed %d bytes, want %d", n, len(data))
	}

	full, err := lex.WordInfo(0, lexicon.SubsetAll)
	if err != nil {
		t.Fatalf("WordInfo: %v", err)
	}
	want := lexicon.WordInfo{
		Surface:              "猫",
		HeadWordLength:       len([]byte("猫")),
		PosID:                5,
		NormalizedForm:       "猫",
		DictionaryFormWordID: dic.NewWordID(0, 0),
		ReadingForm:          "ネコ",
		SplitsA:              []dic.WordID{},
		SplitsB:              []dic.WordID{},
		WordStructure:        []dic.WordID{},
		SynonymGroupIDs:      []uint32{},
	}
	if !reflect.DeepEqual(full, want) {
		t.Fatalf("WordInfo(SubsetAll) = %+v, want %+v", full, want)
	}

	minimal, err := lex.WordInfo(0, 0)
	if err != nil {
		t.Fatalf("WordInfo: %v", err)
	}
	if minimal.Surface != "" || minimal.ReadingForm != "" {
		t.Fatalf("WordInfo(0) should skip string fields, got %+v", minimal)
	}
	if minimal.HeadWordLength != want.HeadWordLength || minimal.PosID != want.PosID {
		t.Fatalf("WordInfo(0) should still report headWordLength/posID, got %+v", minimal)
	}
	if minimal.DictionaryFormWordID != dic.Invalid {
		t.Fatalf("WordInfo without SubsetDictionaryForm should report dic.Invalid, got %v", minimal.DictionaryFormWordID)
	}
}

func TestWordParam(t *testing.T) {
	data := dictest.Lexicon([]dictest.LexiconEntry{
		{Surface: "猫", LeftID: 3, RightID: 4, Cost: -7},
	})
	lex, _, err := lexicon.Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	left, right, cost := lex.WordParam(0)
	if left != 3 || right != 4 || cost != -7 {
		t.Fatalf("WordParam = (%d,%d,%d), want (3,4,-7)", left, right, cost)
	}
}
