// Package inputtext holds the analyzer's input buffer — original text,
// rewritten (modified) text, and the bidirectional offset mapping between
// them — plus the built-in rewriter plugins that normalize the buffer in
// place.
package inputtext

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/morana-nlp/morana/charclass"
)

// ErrInvalidInput is returned when input is not valid UTF-8. Per spec.md
// §7, this is the only condition under which the buffer rejects input.
var ErrInvalidInput = errors.New("inputtext: invalid UTF-8 input")

// Range is a half-open byte range [Start, End) in the modified buffer.
type Range struct{ Start, End int }

type charText struct {
	runes       []rune
	byteOffsets []int // len = len(runes)+1
}

func newCharText(s string) (charText, error) {
	if !utf8.ValidString(s) {
		return charText{}, ErrInvalidInput
	}
	runes := []rune(s)
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += utf8.RuneLen(r)
	}
	offsets[len(runes)] = off
	return charText{runes: runes, byteOffsets: offsets}, nil
}

func (c charText) String() string { return string(c.runes) }

// charIndexForByte returns the character index whose first byte is at
// byteOffset, requiring an exact boundary match.
func (c charText) charIndexForByte(byteOffset int) (int, bool) {
	for i, off := range c.byteOffsets {
		if off == byteOffset {
			return i, true
		}
		if off > byteOffset {
			return 0, false
		}
	}
	return 0, false
}

// Buffer is the analyzer's per-analysis input buffer.
type Buffer struct {
	original charText
	modified charText

	// charOrigin[i] is the original character index that modified
	// character i is attributed to.
	charOrigin []int
	// charTarget[i] is the modified character index that original
	// character i's replacement begins at.
	charTarget []int

	categories []charclass.Type
	catTable   *charclass.Table

	pending []pendingEdit
}

type pendingEdit struct {
	startChar, endChar int
	replacement        []rune
}

// New builds a buffer from original text, with an initial identity
// rewrite (modified starts out equal to original) and category mask
// computed from table.
func New(original string, table *charclass.Table) (*Buffer, error) {
	ct, err := newCharText(original)
	if err != nil {
		return nil, err
	}
	b := &Buffer{
		original: ct,
		modified: ct,
		catTable: table,
	}
	b.resetIdentityMapping()
	b.recomputeCategories()
	return b, nil
}

func (b *Buffer) resetIdentityMapping() {
	n := len(b.modified.runes)
	b.charOrigin = make([]int, n)
	b.charTarget = make([]int, n)
	for i := range b.charOrigin {
		b.charOrigin[i] = i
		b.charTarget[i] = i
	}
}

func (b *Buffer) recomputeCategories() {
	b.categories = make([]charclass.Type, len(b.modified.runes))
	if b.catTable == nil {
		return
	}
	for i, r := range b.modified.runes {
		b.categories[i] = b.catTable.At(r)
	}
}

// Original returns the immutable original text.
func (b *Buffer) Original() string { return b.original.String() }

// Modified returns the current rewritten text.
func (b *Buffer) Modified() string { return b.modified.String() }

// ModifiedBytes returns the rewritten text's UTF-8 bytes.
func (b *Buffer) ModifiedBytes() []byte { return []byte(b.modified.String()) }

// Edit queues a replacement of modifiedRange (byte offsets in the current
// Modified() text) with replacement, to take effect on the next Commit.
// Edits within one transaction must be non-overlapping and submitted in
// increasing order, and modifiedRange must fall on character boundaries.
func (b *Buffer) Edit(modifiedRange Range, replacement []byte) error {
	start, ok := b.modified.charIndexForByte(modifiedRange.Start)
	if !ok {
		return fmt.Errorf("inputtext: edit start %d is not a character boundary", modifiedRange.Start)
	}
	end, ok := b.modified.charIndexForByte(modifiedRange.End)
	if !ok {
		return fmt.Errorf("inputtext: edit end %d is not a character boundary", modifiedRange.End)
	}
	if !utf8.Valid(replacement) {
		return ErrInvalidInput
	}
	if len(b.pending) > 0 {
		last := b.pending[len(b.pending)-1]
		if start < last.endChar {
			return fmt.Errorf("inputtext: edits must be non-overlapping and increasing (start %d before previous end %d)", start, last.endChar)
		}
	}
	b.pending = append(b.pending, pendingEdit{startChar: start, endChar: end, replacement: []rune(string(replacement))})
	return nil
}

// Commit applies all queued edits, recomputing the offset bijection and
// the aligned category mask, then clears the pending transaction.
func (b *Buffer) Commit() error {
	oldModified := b.modified
	oldOrigin := b.charOrigin

	var newRunes []rune
	var newOrigin []int
	newTarget := make([]int, len(b.original.runes))
	// unedited original characters default to an identity target, fixed
	// up below as we walk through edits; initialize lazily via -1 and fill.
	for i := range newTarget {
		newTarget[i] = -1
	}

	cursor := 0
	for _, e := range b.pending {
		if e.startChar < cursor {
			return fmt.Errorf("inputtext: overlapping edits at character %d", e.startChar)
		}
		// copy the unedited stretch [cursor, e.startChar)
		for i := cursor; i < e.startChar; i++ {
			newOrigin = append(newOrigin, oldOrigin[i])
			newTarget[oldOrigin[i]] = len(newRunes)
			newRunes = append(newRunes, oldModified.runes[i])
		}

		origStart := oldOrigin[e.startChar]
		origEnd := len(b.original.runes)
		if e.endChar < len(oldOrigin) {
			origEnd = oldOrigin[e.endChar]
		}

		replStart := len(newRunes)
		for _, r := range e.replacement {
			newOrigin = append(newOrigin, origStart)
			newRunes = append(newRunes, r)
		}
		for oc := origStart; oc < origEnd; oc++ {
			newTarget[oc] = replStart
		}

		cursor = e.endChar
	}
	for i := cursor; i < len(oldModified.runes); i++ {
		newOrigin = append(newOrigin, oldOrigin[i])
		newTarget[oldOrigin[i]] = len(newRunes)
		newRunes = append(newRunes, oldModified.runes[i])
	}

	offsets := make([]int, len(newRunes)+1)
	off := 0
	for i, r := range newRunes {
		offsets[i] = off
		off += utf8.RuneLen(r)
	}
	offsets[len(newRunes)] = off

	b.modified = charText{runes: newRunes, byteOffsets: offsets}
	b.charOrigin = newOrigin
	b.charTarget = newTarget
	b.pending = nil
	b.recomputeCategories()
	return nil
}

// M2O returns the original-text byte offset corresponding to a modified-
// text character boundary given as a byte offset.
func (b *Buffer) M2O(modifiedByteOffset int) (int, bool) {
	idx, ok := b.modified.charIndexForByte(modifiedByteOffset)
	if !ok {
		return 0, false
	}
	if idx == len(b.modified.runes) {
		return b.original.byteOffsets[len(b.original.runes)], true
	}
	origChar := b.charOrigin[idx]
	return b.original.byteOffsets[origChar], true
}

// O2M returns the modified-text byte offset corresponding to an original-
// text character boundary given as a byte offset.
func (b *Buffer) O2M(originalByteOffset int) (int, bool) {
	idx, ok := b.original.charIndexForByte(originalByteOffset)
	if !ok {
		return 0, false
	}
	if idx == len(b.original.runes) {
		return b.modified.byteOffsets[len(b.modified.runes)], true
	}
	return b.modified.byteOffsets[b.charTarget[idx]], true
}

// CatAt returns the category mask of the character beginning at the given
// modified-text byte offset.
func (b *Buffer) CatAt(byteOffset int) charclass.Type {
	idx, ok := b.modified.charIndexForByte(byteOffset)
	if !ok || idx >= len(b.categories) {
		return charclass.Default
	}
	return b.categories[idx]
}

// CatContinuousLen returns, starting at the character beginning at
// byteOffset, how many consecutive characters share at least one category
// bit with that first character.
func (b *Buffer) CatContinuousLen(byteOffset int) int {
	start, ok := b.modified.charIndexForByte(byteOffset)
	if !ok || start >= len(b.categories) {
		return 0
	}
	mask := b.categories[start]
	n := 0
	for i := start; i < len(b.categories) && b.categories[i].Any(mask); i++ {
		n++
	}
	return n
}

// CharDistance returns the byte length spanning n characters starting at
// byteOffset (clamped to the end of the buffer).
func (b *Buffer) CharDistance(byteOffset int, n int) int {
	start, ok := b.modified.charIndexForByte(byteOffset)
	if !ok {
		return 0
	}
	end := start + n
	if end > len(b.modified.runes) {
		end = len(b.modified.runes)
	}
	return b.modified.byteOffsets[end] - b.modified.byteOffsets[start]
}

// Len returns the byte length of the modified text.
func (b *Buffer) Len() int { return len(b.ModifiedBytes()) }

// Boundaries returns the ascending byte offsets of every character boundary
// in the modified text, from 0 through Len() inclusive.
func (b *Buffer) Boundaries() []int {
	out := make([]int, len(b.modified.byteOffsets))
	copy(out, b.modified.byteOffsets)
	return out
}

// CategoryTable returns the character-category table the buffer was built
// with, or nil if none was supplied.
func (b *Buffer) CategoryTable() *charclass.Table { return b.catTable }
