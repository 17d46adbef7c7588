package inputtext

import (
	"strings"
	"testing"

	"github.com/morana-nlp/morana/charclass"
)

func testCategoryTable(t *testing.T) *charclass.Table {
	t.Helper()
	def := `
DEFAULT 0 0 0
KANJI 0 0 0
HIRAGANA 0 0 0
KATAKANA 0 0 0
ALPHA 0 0 0

0x3041..0x309F HIRAGANA
0x30A1..0x30FF KATAKANA
0x4E00..0x9FFF KANJI
0x0041..0x007A ALPHA
`
	tb, err := charclass.ReadDefinitions(strings.NewReader(def))
	if err != nil {
		t.Fatalf("ReadDefinitions: %v", err)
	}
	return tb
}

func TestNormalizerLowercasesAndFoldsFullwidth(t *testing.T) {
	b, err := New("Ｖintage", testCategoryTable(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n := &Normalizer{}
	if err := n.Setup(nil); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := n.Rewrite(b); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := b.Modified(); got != "vintage" {
		t.Fatalf("Modified() = %q, want %q", got, "vintage")
	}
}

func TestNormalizerSkipSet(t *testing.T) {
	b, err := New("ABC", testCategoryTable(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n := &Normalizer{}
	if err := n.Setup(map[rune]bool{'B': true}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := n.Rewrite(b); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := b.Modified(); got != "aBc" {
		t.Fatalf("Modified() = %q, want %q", got, "aBc")
	}
}

func TestProlongedSoundMarkCollapse(t *testing.T) {
	b, err := New("スーパー~~〜だ", testCategoryTable(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := &ProlongedSoundMark{}
	if err := p.Rewrite(b); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := b.Modified(); got != "スーパーだ" {
		t.Fatalf("Modified() = %q, want %q", got, "スーパーだ")
	}
}

func TestIgnoreYomiganaRemovesAnnotation(t *testing.T) {
	b, err := New("漢字（かんじ）です", testCategoryTable(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	y := &IgnoreYomigana{MaxLength: 4}
	if err := y.Rewrite(b); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := b.Modified(); got != "漢字です" {
		t.Fatalf("Modified() = %q, want %q", got, "漢字です")
	}
}

func TestIgnoreYomiganaRespectsMaxLength(t *testing.T) {
	b, err := New("漢字（かんじてき）です", testCategoryTable(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	y := &IgnoreYomigana{MaxLength: 2}
	if err := y.Rewrite(b); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := b.Modified(); got != "漢字（かんじてき）です" {
		t.Fatalf("Modified() = %q, want unchanged (annotation too long)", got)
	}
}
