package dic

import (
	"encoding/binary"
	"errors"
	"math"
)

// ConnectionMatrix holds the signed 16-bit connection-cost table indexed
// by (left_id, right_id), stored right-major: index = right*numLeft+left.
// This matches the original binary layout exactly, confirmed against the
// reference dictionary reader's indexing function.
type ConnectionMatrix struct {
	data     []int16
	numLeft  int
	numRight int
}

// InhibitedConnection is the sentinel cost InhibitConnection writes into
// the matrix to make a (left,right) transition unusable by the lattice's
// cost-minimizing search, without a separate boolean side table.
const InhibitedConnection int16 = math.MaxInt16

var errConnectionMatrixBounds = errors.New("dic: connection matrix truncated")

// ParseConnectionMatrix reads "left_size:u16, right_size:u16,
// i16[left*right]" starting at offset, returning the matrix and the byte
// offset immediately after it.
func ParseConnectionMatrix(data []byte, offset int) (*ConnectionMatrix, int, error) {
	if offset+4 > len(data) {
		return nil, 0, errConnectionMatrixBounds
	}
	numLeft := int(binary.LittleEndian.Uint16(data[offset:]))
	numRight := int(binary.LittleEndian.Uint16(data[offset+2:]))
	offset += 4

	size := numLeft * numRight
	end := offset + size*2
	if end > len(data) {
		return nil, 0, errConnectionMatrixBounds
	}

	values := make([]int16, size)
	for i := 0; i < size; i++ {
		values[i] = int16(binary.LittleEndian.Uint16(data[offset+i*2:]))
	}

	m := &ConnectionMatrix{data: values, numLeft: numLeft, numRight: numRight}
	return m, end, nil
}

// NumLeft returns the number of distinct left-context ids.
func (m *ConnectionMatrix) NumLeft() int { return m.numLeft }

// NumRight returns the number of distinct right-context ids.
func (m *ConnectionMatrix) NumRight() int { return m.numRight }

func (m *ConnectionMatrix) index(left, right uint16) int {
	return int(right)*m.numLeft + int(left)
}

// Cost returns the connection cost between the right-context id of the
// node on the left (left) and the left-context id of the node on the
// right (right).
func (m *ConnectionMatrix) Cost(left, right uint16) int16 {
	return m.data[m.index(left, right)]
}

// SetCost overwrites one entry. Used only by the InhibitConnection
// connection-cost-edit plugin, applied once at grammar setup time.
func (m *ConnectionMatrix) SetCost(left, right uint16, value int16) {
	m.data[m.index(left, right)] = value
}
