package inputtext

import "github.com/morana-nlp/morana/charclass"

const (
	yomiganaOpen  = '（'
	yomiganaClose = '）'
)

// IgnoreYomigana removes "（かな）"-shaped reading annotations — a
// fullwidth-parenthesized run of kana immediately following a KANJI
// character — when the annotation's content is no longer than MaxLength
// characters, per spec.md §4.D.
type IgnoreYomigana struct {
	MaxLength int
}

// Setup has nothing to configure.
func (y *IgnoreYomigana) Setup(map[rune]bool) error { return nil }

// Rewrite removes every eligible annotation.
func (y *IgnoreYomigana) Rewrite(b *Buffer) error {
	text := b.Modified()
	runes := []rune(text)
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	const kana = charclass.Hiragana | charclass.Katakana

	i := 0
	for i < len(runes) {
		if runes[i] != yomiganaOpen || i == 0 || !b.CatAt(offsets[i-1]).Has(charclass.Kanji) {
			i++
			continue
		}
		j := i + 1
		allKana := true
		for j < len(runes) && runes[j] != yomiganaClose {
			if !b.CatAt(offsets[j]).Any(kana) {
				allKana = false
			}
			j++
		}
		if j >= len(runes) || !allKana {
			i++
			continue
		}
		contentLen := j - (i + 1)
		if contentLen == 0 || contentLen > y.MaxLength {
			i = j + 1
			continue
		}
		if err := b.Edit(Range{offsets[i], offsets[j+1]}, nil); err != nil {
			return err
		}
		i = j + 1
	}
	return b.Commit()
}
