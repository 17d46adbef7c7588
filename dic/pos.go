package dic

import "encoding/binary"

// POS is a part-of-speech tuple: six hierarchical fields, e.g.
// {名詞, 普通名詞, 一般, *, *, *}.
type POS [6]string

// PosTable is the ordered, dense list of POS tuples a grammar declares.
// A word's pos_id indexes into this table.
type PosTable struct {
	entries []POS
}

// ParsePosTable reads a length-prefixed sequence of 6-tuples of
// UTF-16LE strings starting at offset.
func ParsePosTable(data []byte, offset int) (*PosTable, int, error) {
	if offset+4 > len(data) {
		return nil, 0, errStringBounds
	}
	count := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4

	entries := make([]POS, count)
	for i := 0; i < count; i++ {
		var pos POS
		for f := 0; f < 6; f++ {
			s, next, err := readString16(data, offset)
			if err != nil {
				return nil, 0, err
			}
			pos[f] = s
			offset = next
		}
		entries[i] = pos
	}
	return &PosTable{entries: entries}, offset, nil
}

// Len returns the number of POS entries.
func (t *PosTable) Len() int { return len(t.entries) }

// Get returns the POS tuple at id, or the zero POS if id is out of range.
func (t *PosTable) Get(id uint16) POS {
	if int(id) >= len(t.entries) {
		return POS{}
	}
	return t.entries[id]
}

// Append returns a new table with other's entries appended after t's, used
// when a user dictionary extends the system POS list (spec.md §4.A: "POS
// tables from user dictionaries extend (append) the system POS list").
// The returned table's ids for t's own entries are unchanged; other's
// entries are renumbered starting at t.Len().
func (t *PosTable) Append(other *PosTable) *PosTable {
	merged := make([]POS, 0, len(t.entries)+len(other.entries))
	merged = append(merged, t.entries...)
	merged = append(merged, other.entries...)
	return &PosTable{entries: merged}
}
