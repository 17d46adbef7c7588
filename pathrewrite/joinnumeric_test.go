package pathrewrite

import (
	"strings"
	"testing"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

func numericTable(t *testing.T) *charclass.Table {
	t.Helper()
	tb, err := charclass.ReadDefinitions(strings.NewReader("DEFAULT 0 0 0\n0x0030..0x0039 NUMERIC\n0x0041..0x005A ALPHA\n"))
	if err != nil {
		t.Fatalf("ReadDefinitions: %v", err)
	}
	return tb
}

func TestJoinNumericMergesAdjacentDigitNodes(t *testing.T) {
	buf, err := inputtext.New("123456X", numericTable(t))
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	path := []lattice.Node{
		{Begin: 0, End: 3, WordID: dic.OOV(0), Cost: 10, IsOOV: true},
		{Begin: 3, End: 6, WordID: dic.OOV(0), Cost: 10, IsOOV: true},
		{Begin: 6, End: 7, WordID: dic.OOV(1)},
	}
	jn := &JoinNumeric{PosID: 5}
	out, err := jn.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Rewrite() = %+v, want 2 nodes (merged numeric + trailing X)", out)
	}
	if out[0].Begin != 0 || out[0].End != 6 || out[0].NormalizedForm != "123456" {
		t.Fatalf("merged node = %+v, want span [0,6) normalized 123456", out[0])
	}
	if out[0].Cost != 20 {
		t.Fatalf("merged node cost = %d, want 20", out[0].Cost)
	}
	if out[1].Begin != 6 {
		t.Fatalf("trailing node = %+v, want unchanged at begin 6", out[1])
	}
}

func TestJoinNumericLeavesSingleNodeUnmerged(t *testing.T) {
	buf, err := inputtext.New("1X", numericTable(t))
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	path := []lattice.Node{
		{Begin: 0, End: 1, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 1, End: 2, WordID: dic.OOV(1)},
	}
	jn := &JoinNumeric{PosID: 5}
	out, err := jn.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if len(out) != 2 || out[0].NormalizedForm != "" {
		t.Fatalf("Rewrite() = %+v, want path unchanged (no run of length >= 2)", out)
	}
}

func TestJoinNumericCommaSeparatedThousands(t *testing.T) {
	tb, err := charclass.ReadDefinitions(strings.NewReader("DEFAULT 0 0 0\n0x0030..0x0039 NUMERIC\n0x002C NUMERIC\n"))
	if err != nil {
		t.Fatalf("ReadDefinitions: %v", err)
	}
	buf, err := inputtext.New("1,234", tb)
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	path := []lattice.Node{
		{Begin: 0, End: 1, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 1, End: 2, WordID: dic.OOV(0), IsOOV: true},
		{Begin: 2, End: 5, WordID: dic.OOV(0), IsOOV: true},
	}
	jn := &JoinNumeric{PosID: 5}
	out, err := jn.Rewrite(path, buf)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if len(out) != 1 || out[0].NormalizedForm != "1234" {
		t.Fatalf("Rewrite() = %+v, want one merged node normalized 1234", out)
	}
}
