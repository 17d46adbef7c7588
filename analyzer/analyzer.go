package analyzer

import (
	"errors"
	"fmt"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/config"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
	"github.com/morana-nlp/morana/pathrewrite"
	"github.com/morana-nlp/morana/plugin"
	"github.com/morana-nlp/morana/sentence"
)

// Mode re-exports lattice.Mode so callers configuring an Analyzer need
// not import the lattice package directly.
type Mode = lattice.Mode

const (
	ModeC = lattice.ModeC
	ModeA = lattice.ModeA
	ModeB = lattice.ModeB
)

// ErrNoOOVProvider is returned by New when no OOV provider was
// configured: per spec.md §4.F, an OOV provider covering the default
// category must always be present so the lattice can never be left
// unreachable by construction.
var ErrNoOOVProvider = errors.New("analyzer: at least one OOV provider is required")

// Analyzer orchestrates one full analysis pipeline — input rewriting,
// candidate enumeration, the lattice search, path rewriting, and mode
// A/B/C morpheme expansion — behind Tokenize/TokenizeSentences. It is not
// safe for concurrent use; build one Analyzer per goroutine from a shared
// *dic.Set via Factory.
type Analyzer struct {
	dict       *dic.Set
	mode       Mode
	charTable  *charclass.Table
	projection config.Projection

	rewriters     []inputtext.Rewriter
	providers     []lattice.OOVProvider
	pathRewriters []pathrewrite.Rewriter

	sentences []*lattice.MorphemeList // reused scratch for TokenizeSentences
}

// Option configures an Analyzer at construction.
type Option func(*Analyzer) error

// WithMode freezes the segmentation granularity Tokenize defaults to.
func WithMode(m Mode) Option {
	return func(a *Analyzer) error { a.mode = m; return nil }
}

// WithProjection selects which word-info field Project reports as a
// morpheme's "surface" string, per spec.md §6.
func WithProjection(p config.Projection) Option {
	return func(a *Analyzer) error { a.projection = p; return nil }
}

// WithCharacterTable overrides the character-category table used to
// build each input buffer; defaults to the dictionary set's grammar
// table.
func WithCharacterTable(t *charclass.Table) Option {
	return func(a *Analyzer) error { a.charTable = t; return nil }
}

// WithInputRewriters sets the input-text rewriter chain, applied to each
// buffer in order before lattice construction.
func WithInputRewriters(rs ...inputtext.Rewriter) Option {
	return func(a *Analyzer) error { a.rewriters = rs; return nil }
}

// WithOOVProviders sets the OOV providers tried, in order, at every
// lattice position.
func WithOOVProviders(ps ...lattice.OOVProvider) Option {
	return func(a *Analyzer) error { a.providers = ps; return nil }
}

// WithPathRewriters sets the path rewriters applied to the best path, in
// order, before mode expansion.
func WithPathRewriters(rs ...pathrewrite.Rewriter) Option {
	return func(a *Analyzer) error { a.pathRewriters = rs; return nil }
}

// New assembles an Analyzer from a shared dictionary set and options.
// Per spec.md §9's "avoid global state; dictionaries passed explicitly"
// note, every dependency an Analyzer needs is either derived from dict or
// supplied by an Option — there is no process-wide plugin registry.
func New(dict *dic.Set, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		dict:       dict,
		mode:       ModeC,
		charTable:  dict.Grammar().Categories(),
		projection: config.ProjectionSurface,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("analyzer: %w", err)
		}
	}
	if len(a.providers) == 0 {
		return nil, ErrNoOOVProvider
	}
	return a, nil
}

// Mode returns the frozen default segmentation granularity.
func (a *Analyzer) Mode() Mode { return a.mode }

// Tokenize runs the full pipeline over text and returns its morphemes
// under mode, reusing out's backing storage if non-nil. Per spec.md
// §4.H, mode is frozen at construction; passing a mode different from
// a.Mode() here is honored but deprecated.
func (a *Analyzer) Tokenize(text string, mode Mode, out *lattice.MorphemeList) (*lattice.MorphemeList, error) {
	if mode != a.mode {
		tracer().Debugf("analyzer: per-call mode %d overrides frozen mode %d (deprecated)", mode, a.mode)
	}

	buf, err := inputtext.New(text, a.charTable)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	for _, r := range a.rewriters {
		if err := r.Rewrite(buf); err != nil {
			return nil, fmt.Errorf("analyzer: input rewrite: %w", err)
		}
	}

	lat, err := lattice.Build(a.dict, buf, a.providers)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	path := lat.BestPath()
	for _, rw := range a.pathRewriters {
		path, err = rw.Rewrite(path, buf)
		if err != nil {
			return nil, fmt.Errorf("analyzer: path rewrite: %w", err)
		}
	}

	list, err := lattice.BuildMorphemes(path, a.dict, buf, mode, out)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return list, nil
}

// TokenizeSentences presegments text via sentence.Splitter and runs
// Tokenize over each sentence, returning one MorphemeList per sentence.
// The returned slice and its MorphemeLists are scratch owned by a,
// reused (and invalidated) on the next TokenizeSentences call.
func (a *Analyzer) TokenizeSentences(text string, mode Mode) ([]*lattice.MorphemeList, error) {
	sp := sentence.New(text)
	prev := a.sentences
	a.sentences = a.sentences[:0]
	for i := 0; ; i++ {
		start, end, ok := sp.Next()
		if !ok {
			break
		}
		var prior *lattice.MorphemeList
		if i < len(prev) {
			prior = prev[i]
		}
		list, err := a.Tokenize(text[start:end], mode, prior)
		if err != nil {
			return nil, fmt.Errorf("analyzer: sentence [%d:%d): %w", start, end, err)
		}
		a.sentences = append(a.sentences, list)
	}
	return a.sentences, nil
}

// Project returns the word-info field p selects as m's reported
// "surface" string, per spec.md §6's projection config field.
func Project(m lattice.Morpheme, p config.Projection) string {
	switch p {
	case config.ProjectionNormalized:
		return m.NormalizedForm
	case config.ProjectionReading:
		return m.ReadingForm
	case config.ProjectionDictionaryForm:
		return m.DictionaryForm
	default:
		return m.Surface
	}
}

// Surface is Project using a's configured projection.
func (a *Analyzer) Surface(m lattice.Morpheme) string { return Project(m, a.projection) }

// Wakati extracts the surface-only view of a MorphemeList: one string
// per morpheme, projection applied, with no POS or dictionary metadata —
// the "-w" CLI output mode's underlying data.
func Wakati(list *lattice.MorphemeList, p config.Projection) []string {
	out := make([]string, list.Len())
	for i := 0; i < list.Len(); i++ {
		out[i] = Project(list.At(i), p)
	}
	return out
}

// ApplyConnectionCostEditors runs each already-set-up connection-cost
// editor plugin against grammar exactly once. Callers must do this before
// building any Analyzer or Factory over grammar's dictionary set: per
// spec.md §6, connection_cost_plugins is a distinct config list from the
// path-rewrite plugins, applied at grammar setup rather than per path
// (see DESIGN.md's InhibitConnection reconciliation).
func ApplyConnectionCostEditors(grammar *dic.Grammar, editors ...plugin.ConnectionCostEditor) {
	for _, e := range editors {
		e.Edit(grammar)
	}
}

// Factory builds one Analyzer per call from a shared *dic.Set and a
// fixed option list, matching spec.md §5's factory-per-shared-dictionary
// pattern: one Factory per process, one Analyzer per worker goroutine.
type Factory struct {
	dict *dic.Set
	opts []Option
}

// NewFactory captures dict and opts for repeated per-goroutine Analyzer
// construction.
func NewFactory(dict *dic.Set, opts ...Option) *Factory {
	return &Factory{dict: dict, opts: opts}
}

// New builds a fresh Analyzer from the factory's dictionary set and
// options.
func (f *Factory) New() (*Analyzer, error) {
	return New(f.dict, f.opts...)
}
