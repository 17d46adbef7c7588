package lexicon

import "encoding/binary"

// WordParamTable holds (left_id, right_id, cost) triples, i16[3*word_count],
// indexed by in-dictionary word index.
type WordParamTable struct {
	data []int16 // len == 3*wordCount
}

func parseWordParams(data []byte, offset, wordCount int) (*WordParamTable, int, error) {
	size := wordCount * 3
	end := offset + size*2
	if end > len(data) {
		return nil, 0, errBounds
	}
	values := make([]int16, size)
	for i := 0; i < size; i++ {
		values[i] = int16(binary.LittleEndian.Uint16(data[offset+i*2:]))
	}
	return &WordParamTable{data: values}, end, nil
}

// Get returns the (left_id, right_id, cost) triple for word index.
func (t *WordParamTable) Get(index uint32) (left, right uint16, cost int16) {
	base := int(index) * 3
	return uint16(t.data[base]), uint16(t.data[base+1]), t.data[base+2]
}

// Len returns the number of word entries.
func (t *WordParamTable) Len() int { return len(t.data) / 3 }
