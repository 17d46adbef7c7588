package dic

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

var errStringBounds = errors.New("dic: string field truncated")

// readString16 reads one length-prefixed UTF-16LE string (length in UTF-16
// code units, per spec.md §6) and returns it decoded plus the offset of
// the next field.
func readString16(data []byte, offset int) (string, int, error) {
	if offset+2 > len(data) {
		return "", 0, errStringBounds
	}
	units := int(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2
	end := offset + units*2
	if end > len(data) {
		return "", 0, errStringBounds
	}
	codeUnits := make([]uint16, units)
	for i := 0; i < units; i++ {
		codeUnits[i] = binary.LittleEndian.Uint16(data[offset+i*2:])
	}
	return string(utf16.Decode(codeUnits)), end, nil
}
