package inputtext

import "unicode"

// Normalizer is the default input-text rewriter: an NFKC-like fold
// (fullwidth ASCII forms collapsed to their halfwidth equivalents) plus
// case folding to lower, skipping any rune in a dictionary-provided
// exception set.
type Normalizer struct {
	skip map[rune]bool
}

// Setup records the exception set of runes to leave untouched.
func (n *Normalizer) Setup(skip map[rune]bool) error {
	n.skip = skip
	return nil
}

func (n *Normalizer) fold(r rune) rune {
	if n.skip != nil && n.skip[r] {
		return r
	}
	// Fullwidth ASCII variants (U+FF01..U+FF5E) collapse to their
	// halfwidth ASCII codepoints, the one NFKC fold this module needs for
	// Japanese text mixing full- and half-width Latin characters.
	if r >= 0xFF01 && r <= 0xFF5E {
		r -= 0xFEE0
	}
	return unicode.ToLower(r)
}

// Rewrite queues one edit per character whose folded form differs from
// its current form.
func (n *Normalizer) Rewrite(b *Buffer) error {
	runes := []rune(b.Modified())
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	for i, r := range runes {
		folded := n.fold(r)
		if folded == r {
			continue
		}
		if err := b.Edit(Range{offsets[i], offsets[i+1]}, []byte(string(folded))); err != nil {
			return err
		}
	}
	return b.Commit()
}
