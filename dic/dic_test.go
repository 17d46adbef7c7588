package dic_test

import (
	"testing"
	"time"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/dic/lexicon"
	"github.com/morana-nlp/morana/internal/dictest"
)

func buildSystemDictionaryBytes() []byte {
	grammar := dictest.Grammar(
		[][6]string{
			{"名詞", "普通名詞", "一般", "*", "*", "*"},
			{"助詞", "格助詞", "*", "*", "*", "*"},
		},
		2, 2,
		func(l, r uint16) int16 { return int16(l) + int16(r)*10 },
		[]dictest.CategoryRange{{Lo: 'あ', Hi: 'ん', Mask: 1 << 6}}, // HIRAGANA bit position, matches charclass ordering
		[]dictest.CategoryDef{{Bit: 1, Invoke: true, Group: false, Length: 1}},
	)
	lex := dictest.Lexicon([]dictest.LexiconEntry{
		{Surface: "猫", PosID: 0, LeftID: 0, RightID: 0, Cost: 100, Reading: "ネコ"},
		{Surface: "猫背", PosID: 0, LeftID: 0, RightID: 0, Cost: 200, Reading: "ネコゼ"},
	})

	buf := dictest.Header(uint64(dic.VersionSystem1), uint64(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Unix()), "test dict")
	buf = append(buf, grammar...)
	buf = append(buf, lex...)
	return buf
}

func TestLoadSystemDictionary(t *testing.T) {
	data := buildSystemDictionaryBytes()
	d, err := dic.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !d.Header.IsSystem() {
		t.Fatalf("expected system dictionary header")
	}
	if d.Header.Description != "test dict" {
		t.Fatalf("Description = %q", d.Header.Description)
	}
	if got := d.Grammar.ConnectCost(1, 1); got != int16(1)+int16(1)*10 {
		t.Fatalf("ConnectCost(1,1) = %d", got)
	}

	var matches []lexicon.Match
	d.Lexicon.CommonPrefixSearch([]byte("猫背"), 0, func(m lexicon.Match) {
		matches = append(matches, m)
	})
	if len(matches) != 2 {
		t.Fatalf("CommonPrefixSearch: got %d matches, want 2: %+v", len(matches), matches)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildSystemDictionaryBytes()
	data[0] = 0xFF
	if _, err := dic.Load(data); err == nil {
		t.Fatalf("expected error for corrupted magic")
	}
}

func TestWordIDRoundTrip(t *testing.T) {
	id := dic.NewWordID(3, 12345)
	if id.DictionaryIndex() != 3 {
		t.Fatalf("DictionaryIndex() = %d", id.DictionaryIndex())
	}
	if id.Index() != 12345 {
		t.Fatalf("Index() = %d", id.Index())
	}
	if id.IsOOV() {
		t.Fatalf("dictionary index 3 should not be OOV")
	}
	oov := dic.OOV(7)
	if !oov.IsOOV() {
		t.Fatalf("dic.OOV() result should report IsOOV")
	}
	if dic.BOS.IsOOV() || dic.EOS.IsOOV() || dic.Invalid.IsOOV() {
		t.Fatalf("sentinels must never report IsOOV")
	}
}
