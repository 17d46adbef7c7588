package inputtext

import "github.com/morana-nlp/morana/charclass"

const prolongedSoundMark = 'ー'

var prolongedVariants = map[rune]bool{
	'ー': true,
	'~': true,
	'〜': true,
}

// ProlongedSoundMark collapses runs of ー/~/〜 following a character of
// category ALPHA, HIRAGANA, or KATAKANA into a single ー, per spec.md
// §4.D.
type ProlongedSoundMark struct{}

// Setup has nothing to configure.
func (p *ProlongedSoundMark) Setup(map[rune]bool) error { return nil }

// Rewrite collapses every maximal run of prolonged-mark variants that
// immediately follows an eligible character.
func (p *ProlongedSoundMark) Rewrite(b *Buffer) error {
	text := b.Modified()
	runes := []rune(text)
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	const eligible = charclass.Alpha | charclass.Hiragana | charclass.Katakana

	i := 1
	for i < len(runes) {
		if !prolongedVariants[runes[i]] {
			i++
			continue
		}
		prevCat := b.CatAt(offsets[i-1])
		if !prevCat.Any(eligible) {
			i++
			continue
		}
		start := i
		for i < len(runes) && prolongedVariants[runes[i]] {
			i++
		}
		if i-start <= 1 && runes[start] == prolongedSoundMark {
			continue // already a single canonical mark, nothing to collapse
		}
		if err := b.Edit(Range{offsets[start], offsets[i]}, []byte(string(prolongedSoundMark))); err != nil {
			return err
		}
	}
	return b.Commit()
}
