/*
Package morana is a Japanese morphological analyzer: given a UTF-8 input
string, it produces a sequence of morphemes — contiguous, non-overlapping
surface segments — each annotated with part-of-speech, dictionary form,
normalized form, reading, and identifiers into a linguistic dictionary.

The module has no executable code at its root; every concern lives in a
subpackage:

	dic          binary dictionary reader: header, grammar, lexicon, dictionary stacks
	charclass    character-category table (char.def format and binary form)
	inputtext    input buffer, offset bijection, input-text rewriter plugins
	oov          out-of-vocabulary node providers (simple, MeCab-style, regex)
	lattice      candidate lattice, Viterbi search, morpheme/mode expansion
	pathrewrite  best-path rewriters (numeric joining, katakana-OOV joining,
	             inhibited-connection matrix edit)
	pos          POS-tuple bitset matcher
	sentence     sentence-boundary presegmentation
	analyzer     orchestration: Tokenize / TokenizeSentences, Factory
	config       the external configuration record

analyzer.New assembles an Analyzer from a *dic.Set and a set of plugin
options; analyzer.Factory builds one Analyzer per goroutine from a shared
dictionary set, since an Analyzer itself is not safe for concurrent use.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package morana
