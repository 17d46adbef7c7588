package pathrewrite

import (
	"strings"
	"testing"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

func katakanaTable(t *testing.T, noOOVBOWFirst bool) *charclass.Table {
	t.Helper()
	def := "DEFAULT 0 0 0\n0x30A1..0x30FF KATAKANA\n"
	tb, err := charclass.ReadDefinitions(strings.NewReader(def))
	if err != nil {
		t.Fatalf("ReadDefinitions: %v", err)
	}
	if noOOVBOWFirst {
		b := charclass.NewBuilder()
		// rebuild with the leading katakana char also carrying NoOOVBOW
		b.OrRange(0x30A1, 0x30FF, charclass.Katakana)
		b.OrRange('ア', 'ア', charclass.NoOOVBOW)
		tb = b.Build()
	}
	return tb
}

func TestJoinKatakanaOovMergesRun(t *testing.T) {
	tb := katakanaTable(t, false)
	buf, err := inputtext.New("アイウ", tb)
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	path := []lattice.Node{
		{Begin: 0, End: 3, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 3, End: 6, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 6, End: 9, WordID: dic.OOV(0), IsOOV: true},
	}
	jk := &JoinKatakanaOov{MinLength: 2, PosID: 7, Cost: 42}
	out, err := jk.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if len(out) != 1 || out[0].Begin != 0 || out[0].End != 9 || out[0].Cost != 42 {
		t.Fatalf("Rewrite() = %+v, want one merged node [0,9) cost 42", out)
	}
}

func TestJoinKatakanaOovAbsorbsShortNonOOVNeighbor(t *testing.T) {
	tb := katakanaTable(t, false)
	buf, err := inputtext.New("アイウ", tb)
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	// path[0] is a dictionary-matched (non-OOV) katakana node, long
	// enough that it does not trigger a join on its own; path[1] is a
	// trailing OOV katakana node that does trigger one. The window must
	// expand backward past the trigger to absorb path[0] even though it
	// is neither OOV nor itself shorter than MinLength.
	path := []lattice.Node{
		{Begin: 0, End: 6, WordID: dic.NewWordID(0, 0), IsOOV: false},
		{Begin: 6, End: 9, WordID: dic.OOV(0), IsOOV: true},
	}
	jk := &JoinKatakanaOov{MinLength: 2, PosID: 7, Cost: 42}
	out, err := jk.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if len(out) != 1 || out[0].Begin != 0 || out[0].End != 9 {
		t.Fatalf("Rewrite() = %+v, want one merged node [0,9) absorbing the non-OOV neighbor", out)
	}
}

func TestJoinKatakanaOovTrimsNoOOVBOWLeadingEdge(t *testing.T) {
	tb := katakanaTable(t, true) // 'ア' carries NoOOVBOW
	buf, err := inputtext.New("アイウ", tb)
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	path := []lattice.Node{
		{Begin: 0, End: 3, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 3, End: 6, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 6, End: 9, WordID: dic.OOV(0), IsOOV: true},
	}
	jk := &JoinKatakanaOov{MinLength: 2, PosID: 7, Cost: 42}
	out, err := jk.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	// leading node trimmed (kept as-is, unmerged); remaining two merge.
	if len(out) != 2 || out[0].Begin != 0 || out[0].End != 3 || out[0].Cost != 0 {
		t.Fatalf("Rewrite() trimmed node = %+v, want unmerged [0,3)", out)
	}
	if out[1].Begin != 3 || out[1].End != 9 {
		t.Fatalf("Rewrite() merged node = %+v, want [3,9)", out[1])
	}
}
