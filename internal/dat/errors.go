package dat

import "errors"

var errTruncated = errors.New("dat: encoded trie truncated")
