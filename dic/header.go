package dic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Version identifies one of the closed set of recognized dictionary
// binary-format versions.
type Version uint64

const (
	VersionSystem1 Version = 0x7366_7375_6361_6468 // "hdacusfs" little-endian-ish magic, system v1
	VersionSystem2 Version = 0x0229_0000_0000_0001
	VersionUser1   Version = 0x0129_0000_0000_0001
	VersionUser2   Version = 0x0229_0000_0000_0002
	VersionUser3   Version = 0x0329_0000_0000_0003
)

// ErrInvalidDictionary is returned when a byte slice is too short or
// otherwise structurally malformed to be a dictionary.
var ErrInvalidDictionary = errors.New("dic: invalid dictionary")

// ErrUnsupportedVersion is returned when the header's version magic is not
// one of the recognized closed-set values.
var ErrUnsupportedVersion = errors.New("dic: unsupported dictionary version")

const (
	headerSize       = 8 + 8 + 256
	descriptionBytes = 256
)

func isSystemVersion(v Version) bool {
	return v == VersionSystem1 || v == VersionSystem2
}

func isUserVersion(v Version) bool {
	return v == VersionUser1 || v == VersionUser2 || v == VersionUser3
}

// Header is the fixed 272-byte prefix of every dictionary file: an 8-byte
// version magic, an 8-byte creation timestamp (Unix seconds), and a
// 256-byte NUL-padded UTF-8 description. Unlike the grammar/lexicon string
// fields (length-prefixed UTF-16LE), the description is fixed-width UTF-8,
// matching the original binary format exactly.
type Header struct {
	Version     Version
	CreateTime  time.Time
	Description string
}

// ParseHeader reads and validates the header from the start of data,
// returning the header and the byte offset of the first block after it.
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) < headerSize {
		return Header{}, 0, fmt.Errorf("%w: too short for header (%d bytes)", ErrInvalidDictionary, len(data))
	}
	version := Version(binary.LittleEndian.Uint64(data[0:8]))
	if !isSystemVersion(version) && !isUserVersion(version) {
		return Header{}, 0, fmt.Errorf("%w: magic %#x", ErrUnsupportedVersion, uint64(version))
	}
	createSecs := binary.LittleEndian.Uint64(data[8:16])
	desc := decodeDescription(data[16:16+descriptionBytes])

	h := Header{
		Version:     version,
		CreateTime:  time.Unix(int64(createSecs), 0).UTC(),
		Description: desc,
	}
	return h, headerSize, nil
}

// IsSystem reports whether the header describes a system dictionary.
func (h Header) IsSystem() bool { return isSystemVersion(h.Version) }

// IsUser reports whether the header describes a user dictionary.
func (h Header) IsUser() bool { return isUserVersion(h.Version) }

func decodeDescription(b []byte) string {
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return strings.TrimRight(string(b[:i]), "\x00")
}
