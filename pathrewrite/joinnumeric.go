package pathrewrite

import (
	"strconv"
	"strings"

	"github.com/morana-nlp/morana/charclass"
	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/inputtext"
	"github.com/morana-nlp/morana/lattice"
)

// JoinNumeric merges adjacent NUMERIC/KANJINUMERIC path nodes whose
// concatenated surface parses as a valid number per NumericParser, per
// spec.md §4.G. The merged node's NormalizedForm is the canonical arabic
// representation.
type JoinNumeric struct {
	PosID uint16
}

const numericCategoryMask = charclass.Numeric | charclass.KanjiNumeric

func isNumericNode(node lattice.Node, buf *inputtext.Buffer) bool {
	return buf.CatAt(node.Begin).Any(numericCategoryMask)
}

// Rewrite greedily merges the longest accepting run of numeric-category
// nodes starting at each position.
func (jn *JoinNumeric) Rewrite(path []lattice.Node, buf *inputtext.Buffer) ([]lattice.Node, error) {
	var out []lattice.Node
	data := buf.ModifiedBytes()

	i := 0
	for i < len(path) {
		if !isNumericNode(path[i], buf) {
			out = append(out, path[i])
			i++
			continue
		}

		var parser NumericParser
		validEnd := -1
		j := i
		for j < len(path) && isNumericNode(path[j], buf) {
			snapshot := parser.clone()
			ok := true
			for _, r := range string(data[path[j].Begin:path[j].End]) {
				if !parser.Feed(r) {
					ok = false
					break
				}
			}
			if !ok {
				parser = snapshot
				break
			}
			if parser.Accept() {
				validEnd = j
			}
			j++
		}

		if validEnd < i+1 {
			out = append(out, path[i])
			i++
			continue
		}

		run := path[i : validEnd+1]
		surface := string(data[run[0].Begin:run[len(run)-1].End])
		merged := lattice.Node{
			Begin: run[0].Begin, End: run[len(run)-1].End,
			WordID:         dic.OOV(uint32(jn.PosID)),
			LeftID:         run[0].LeftID,
			RightID:        run[len(run)-1].RightID,
			IsOOV:          true,
			NormalizedForm: canonicalArabic(surface),
		}
		for _, n := range run {
			merged.Cost += n.Cost
		}
		out = append(out, merged)
		i = validEnd + 1
	}
	return out, nil
}

func canonicalArabic(s string) string {
	hasKanji := false
	for _, r := range s {
		if kanjiSmallDigits[r] || kanjiMultipliers[r] {
			hasKanji = true
			break
		}
	}
	if !hasKanji {
		return strings.ReplaceAll(s, ",", "")
	}

	total, current := 0.0, 0.0
	literal := "" // pending arabic digits, e.g. the "1.5" of 1.5百万
	flush := func() {
		if literal != "" {
			v, _ := strconv.ParseFloat(literal, 64)
			current += v
			literal = ""
		}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			literal += string(r)
		case kanjiSmallDigits[r]:
			current += float64(smallDigitValue(r))
		case kanjiMultipliers[r]:
			flush()
			m := float64(multiplierValue(r))
			if current == 0 {
				current = 1
			}
			if m >= 10000 {
				total += current * m
				current = 0
			} else {
				current *= m
			}
		}
	}
	flush()
	return strconv.FormatFloat(total+current, 'f', -1, 64)
}

func smallDigitValue(r rune) int {
	return strings.IndexRune("一二三四五六七八九", r) + 1
}

func multiplierValue(r rune) int {
	switch r {
	case '十':
		return 10
	case '百':
		return 100
	case '千':
		return 1000
	case '万':
		return 10000
	case '億':
		return 100000000
	case '兆':
		return 1000000000000
	}
	return 0
}
