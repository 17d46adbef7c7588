// Package sentence presegments input into sentence-sized byte ranges
// using punctuation heuristics, per spec.md §4.I.
package sentence

import "unicode/utf8"

var sentenceEnders = map[rune]bool{
	'。': true, '！': true, '？': true, '.': true, '!': true, '?': true,
}

var closingBrackets = map[rune]bool{
	')': true, ']': true, '}': true,
	'）': true, '」': true, '』': true, '】': true, '〉': true, '》': true, '〟': true,
}

// Splitter is a restartable, lazy byte-range iterator over sentence
// boundaries: segments at sentence-ending punctuation unless immediately
// followed by a closing bracket, and always produces non-empty chunks.
type Splitter struct {
	text []byte
	pos  int
}

// New builds a Splitter over text, starting at byte offset 0.
func New(text string) *Splitter {
	return &Splitter{text: []byte(text)}
}

// Restart repositions the splitter to resume from byteOffset.
func (s *Splitter) Restart(byteOffset int) {
	s.pos = byteOffset
}

// Next returns the next sentence's byte range [start, end) in the
// original text, or ok=false once the input is exhausted.
func (s *Splitter) Next() (start, end int, ok bool) {
	if s.pos >= len(s.text) {
		return 0, 0, false
	}
	start = s.pos
	i := start
	for i < len(s.text) {
		r, size := utf8.DecodeRune(s.text[i:])
		i += size
		if !sentenceEnders[r] {
			continue
		}
		// A terminator immediately followed by a closing bracket does
		// not end the sentence here: absorb the bracket run and keep
		// scanning for the real end.
		j := i
		bracketed := false
		for j < len(s.text) {
			next, nsize := utf8.DecodeRune(s.text[j:])
			if !closingBrackets[next] {
				break
			}
			bracketed = true
			j += nsize
		}
		if bracketed {
			i = j
			continue
		}
		break
	}
	if i > len(s.text) {
		i = len(s.text)
	}
	s.pos = i
	return start, i, true
}
