package dic

import (
	"encoding/binary"
	"fmt"

	"github.com/morana-nlp/morana/charclass"
)

// Grammar is the system dictionary's grammar block: the POS table, the
// connection-cost matrix, and the character-category table. BOS/EOS
// connection ids are both fixed at 0, per spec.
type Grammar struct {
	pos        *PosTable
	connection *ConnectionMatrix
	categories *charclass.Table
}

// BOSEOSConnectionID is the fixed left/right context id used for the
// lattice's BOS and EOS sentinel nodes.
const BOSEOSConnectionID uint16 = 0

// ParseGrammar reads the grammar block starting at offset: the POS table,
// the connection matrix, then the binary character-category table. It
// returns the grammar and the offset of the first byte after the block.
func ParseGrammar(data []byte, offset int) (*Grammar, int, error) {
	pos, offset, err := ParsePosTable(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("dic: pos table: %w", err)
	}
	conn, offset, err := ParseConnectionMatrix(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("dic: connection matrix: %w", err)
	}
	categories, offset, err := parseBinaryCategories(data, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("dic: character category table: %w", err)
	}
	return &Grammar{pos: pos, connection: conn, categories: categories}, offset, nil
}

// Pos returns the POS tuple for id.
func (g *Grammar) Pos(id uint16) POS { return g.pos.Get(id) }

// PosTableLen returns the number of declared POS entries.
func (g *Grammar) PosTableLen() int { return g.pos.Len() }

// ConnectCost returns the connection cost between a left node's right-id
// and a right node's left-id.
func (g *Grammar) ConnectCost(left, right uint16) int16 { return g.connection.Cost(left, right) }

// SetConnectCost overwrites one connection-cost entry. The only caller in
// this module is the InhibitConnection connection-cost-edit plugin,
// applied once after grammar load and before any lattice is built.
func (g *Grammar) SetConnectCost(left, right uint16, value int16) {
	g.connection.SetCost(left, right, value)
}

// CheckLeftID validates a configured left-context id against the matrix's
// declared dimension.
func (g *Grammar) CheckLeftID(id int) (uint16, error) {
	if id < 0 || id >= g.connection.NumLeft() {
		return 0, fmt.Errorf("dic: left_id %d out of range [0,%d)", id, g.connection.NumLeft())
	}
	return uint16(id), nil
}

// CheckRightID validates a configured right-context id against the
// matrix's declared dimension.
func (g *Grammar) CheckRightID(id int) (uint16, error) {
	if id < 0 || id >= g.connection.NumRight() {
		return 0, fmt.Errorf("dic: right_id %d out of range [0,%d)", id, g.connection.NumRight())
	}
	return uint16(id), nil
}

// Categories returns the character-category table embedded in the
// grammar block.
func (g *Grammar) Categories() *charclass.Table { return g.categories }

// ExtendPos appends a user dictionary's POS table after this grammar's
// own, renumbering the user entries to start at PosTableLen().
func (g *Grammar) ExtendPos(user *PosTable) {
	g.pos = g.pos.Append(user)
}

// GetPosID looks up the dense id of an exact 6-tuple, used when resolving
// an unk.def/OOV configuration line's POS fields against the grammar's
// declared POS table.
func (g *Grammar) GetPosID(fields [6]string) (uint16, bool) {
	for i := 0; i < g.pos.Len(); i++ {
		if g.pos.Get(uint16(i)) == POS(fields) {
			return uint16(i), true
		}
	}
	return 0, false
}

// binary encoding of the character-category table embedded in a
// dictionary's grammar block: a sequence of (lo, hi, mask) ranges followed
// by a sequence of (category bit, invoke, group, length) definitions. This
// is a block-internal detail private to this module's binary format, not
// part of the char.def text format charclass.ReadDefinitions parses.
func parseBinaryCategories(data []byte, offset int) (*charclass.Table, int, error) {
	if offset+4 > len(data) {
		return nil, 0, errStringBounds
	}
	rangeCount := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4

	b := charclass.NewBuilder()
	for i := 0; i < rangeCount; i++ {
		if offset+12 > len(data) {
			return nil, 0, errStringBounds
		}
		lo := binary.LittleEndian.Uint32(data[offset:])
		hi := binary.LittleEndian.Uint32(data[offset+4:])
		mask := binary.LittleEndian.Uint32(data[offset+8:])
		b.OrRange(rune(lo), rune(hi), charclass.Type(mask))
		offset += 12
	}

	if offset+2 > len(data) {
		return nil, 0, errStringBounds
	}
	defCount := int(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2
	for i := 0; i < defCount; i++ {
		if offset+10 > len(data) {
			return nil, 0, errStringBounds
		}
		cat := charclass.Type(binary.LittleEndian.Uint32(data[offset:]))
		invoke := data[offset+4] != 0
		group := data[offset+5] != 0
		length := binary.LittleEndian.Uint32(data[offset+6:])
		b.SetDefinition(cat, charclass.Definition{Invoke: invoke, Group: group, Length: length})
		offset += 10
	}

	return b.Build(), offset, nil
}
