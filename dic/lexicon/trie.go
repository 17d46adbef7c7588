package lexicon

import "github.com/morana-nlp/morana/internal/dat"

func parseTrie(data []byte, offset int) (*dat.Trie, int, error) {
	return dat.Decode(data, offset)
}
