package oov

import (
	"strings"
	"testing"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

func testAlphaTable(t *testing.T) *charclass.Table {
	t.Helper()
	tb, err := charclass.ReadDefinitions(strings.NewReader("DEFAULT 0 0 0\n0x0030..0x0039 NUMERIC\n0x0041..0x005A ALPHA\n"))
	if err != nil {
		t.Fatalf("ReadDefinitions: %v", err)
	}
	return tb
}

func TestRegexProvideOOVMatchesAnchored(t *testing.T) {
	r := &Regex{Pattern: `[0-9]+`, MaxLength: 10, LeftID: 1, RightID: 1, Cost: 50, PosID: 0}
	if err := r.SetUp(); err != nil {
		t.Fatalf("SetUp: %v", err)
	}
	buf, err := inputtext.New("123ABC", testAlphaTable(t))
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	var out []lattice.Node
	if err := r.ProvideOOV(buf, 0, false, &out); err != nil {
		t.Fatalf("ProvideOOV: %v", err)
	}
	if len(out) != 1 || out[0].End != 3 {
		t.Fatalf("ProvideOOV() = %+v, want one node ending at byte 3", out)
	}
}

func TestRegexProvideOOVSkipsDuplicateEnd(t *testing.T) {
	r := &Regex{Pattern: `[0-9]+`, MaxLength: 10, LeftID: 1, RightID: 1, Cost: 50}
	if err := r.SetUp(); err != nil {
		t.Fatalf("SetUp: %v", err)
	}
	buf, err := inputtext.New("123ABC", testAlphaTable(t))
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	out := []lattice.Node{{Begin: 0, End: 3}}
	if err := r.ProvideOOV(buf, 0, true, &out); err != nil {
		t.Fatalf("ProvideOOV: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("ProvideOOV() added a duplicate-end node: %+v", out)
	}
}

func TestRegexProvideOOVSkipsInsideCategoryRun(t *testing.T) {
	r := &Regex{Pattern: `[0-9]+`, MaxLength: 10, LeftID: 1, RightID: 1, Cost: 50}
	if err := r.SetUp(); err != nil {
		t.Fatalf("SetUp: %v", err)
	}
	buf, err := inputtext.New("12345", testAlphaTable(t))
	if err != nil {
		t.Fatalf("inputtext.New: %v", err)
	}
	var out []lattice.Node
	// offset 1 is strictly inside the numeric run (not a run boundary):
	// CatContinuousLen(1)+1 == CatContinuousLen(0) (4+1==5).
	if err := r.ProvideOOV(buf, 1, false, &out); err != nil {
		t.Fatalf("ProvideOOV: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("ProvideOOV() = %+v, want no nodes mid-run", out)
	}
}
