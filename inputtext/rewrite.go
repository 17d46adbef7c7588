package inputtext

// Rewriter is the closed input-text plugin interface (spec.md §9):
// setup against the dictionary, then apply to a buffer.
type Rewriter interface {
	Setup(skip map[rune]bool) error
	Rewrite(b *Buffer) error
}

// DefaultChain returns the three built-in rewriters in spec.md §4.D's
// fixed order: default normalizer, prolonged-sound-mark collapse,
// ignore-yomigana.
func DefaultChain(skip map[rune]bool, maxYomiganaLength int) ([]Rewriter, error) {
	n := &Normalizer{}
	if err := n.Setup(skip); err != nil {
		return nil, err
	}
	return []Rewriter{
		n,
		&ProlongedSoundMark{},
		&IgnoreYomigana{MaxLength: maxYomiganaLength},
	}, nil
}

