// Package charclass maps code points to character-category bit masks and
// carries the per-category invoke/group/length rules consulted by OOV
// providers and input rewriters.
package charclass

import "github.com/morana-nlp/morana/internal/dat"

// Type is a bitset over the closed set of character categories. A code
// point may belong to several categories at once (categories combine with
// bitwise OR).
type Type uint32

const (
	Default Type = 1 << iota
	Space
	Kanji
	Symbol
	Numeric
	Alpha
	Hiragana
	Katakana
	KanjiNumeric
	Greek
	Cyrillic
	User1
	User2
	User3
	User4

	// NoOOVBOW and NoOOVBOW2 mark code points that may not begin a joined
	// katakana OOV word. They exist in the dictionary's char.def format but
	// are not surfaced as ordinary invoke/group/length categories, and the
	// OOV providers do not consult them; only JoinKatakanaOov does, when
	// trimming the leading edge of a katakana run (see pathrewrite).
	NoOOVBOW
	NoOOVBOW2

	All Type = (1 << iota) - 1
)

var names = map[string]Type{
	"DEFAULT":      Default,
	"SPACE":        Space,
	"KANJI":        Kanji,
	"SYMBOL":       Symbol,
	"NUMERIC":      Numeric,
	"ALPHA":        Alpha,
	"HIRAGANA":     Hiragana,
	"KATAKANA":     Katakana,
	"KANJINUMERIC": KanjiNumeric,
	"GREEK":        Greek,
	"CYRILLIC":     Cyrillic,
	"USER1":        User1,
	"USER2":        User2,
	"USER3":        User3,
	"USER4":        User4,
	"NOOOVBOW":     NoOOVBOW,
	"NOOOVBOW2":    NoOOVBOW2,
}

// ParseName resolves a char.def category name token (e.g. "KANJI") to its
// Type bit, or reports ok=false for an unrecognized name.
func ParseName(name string) (Type, bool) {
	t, ok := names[name]
	return t, ok
}

// Has reports whether t carries every bit in mask.
func (t Type) Has(mask Type) bool { return t&mask == mask }

// Any reports whether t carries at least one bit in mask.
func (t Type) Any(mask Type) bool { return t&mask != 0 }

// Definition holds the invoke/group/length rule for one category, as
// declared by a char.def definition line "NAME INVOKE GROUP LENGTH".
type Definition struct {
	Invoke bool
	Group  bool
	Length uint32
}

// Table is a loaded character-category table: the per-code-point bitmask
// map plus the per-category OOV rule.
type Table struct {
	masks       *dat.RuneMap
	definitions map[Type]Definition
}

// At returns the category bitmask for r. KANJINUMERIC entries implicitly
// also carry KANJI if the table did not set it explicitly, per spec.
func (tb *Table) At(r rune) Type {
	m := Type(tb.masks.Get(r))
	if m.Has(KanjiNumeric) {
		m |= Kanji
	}
	if m == 0 {
		return Default
	}
	return m
}

// Bits decomposes t into its individual single-category bits, in
// ascending order. OOV providers consult per-category invoke/group/length
// rules one category at a time, since a code point's mask is typically
// the union of several categories each declared separately in char.def.
func (t Type) Bits() []Type {
	var out []Type
	for bit := Default; bit < NoOOVBOW; bit <<= 1 {
		if t&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// Definition returns the invoke/group/length rule for category t, falling
// back to the zero Definition (not invoked, not grouped, length 0) if the
// table never declared it.
func (tb *Table) Definition(t Type) Definition {
	return tb.definitions[t]
}

// DefinitionOK is Definition plus whether the table declared t at all,
// for callers (e.g. the MeCab-style OOV provider) that must skip
// categories the table never mentions rather than treat them as the zero
// rule.
func (tb *Table) DefinitionOK(t Type) (Definition, bool) {
	d, ok := tb.definitions[t]
	return d, ok
}

// Builder assembles a Table from sources other than a char.def text
// stream — specifically, the binary category table embedded in a
// dictionary's grammar block.
type Builder struct {
	tb *Table
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tb: &Table{
		masks:       dat.NewRuneMap(),
		definitions: make(map[Type]Definition),
	}}
}

// OrRange ORs mask into every code point in [lo, hi].
func (b *Builder) OrRange(lo, hi rune, mask Type) { b.tb.masks.OrRange(lo, hi, uint32(mask)) }

// SetDefinition records the invoke/group/length rule for category t.
func (b *Builder) SetDefinition(t Type, d Definition) { b.tb.definitions[t] = d }

// Build finalizes the Table. DEFAULT is not required here: unlike
// ReadDefinitions, a binary-sourced table is trusted dictionary content,
// not hand-authored configuration.
func (b *Builder) Build() *Table { return b.tb }
