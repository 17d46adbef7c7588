// Package dictest provides shared slice-backed builders for synthetic
// dictionary bytes, used by this module's tests to stand in for a real
// dictionary file without touching the filesystem.
package dictest

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/internal/dat"
)

func appendU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// String16 encodes a length-prefixed UTF-16LE string field.
func String16(buf []byte, s string) []byte {
	units := utf16.Encode([]rune(s))
	buf = appendU16(buf, uint16(len(units)))
	for _, u := range units {
		buf = appendU16(buf, u)
	}
	return buf
}

// Header encodes a 272-byte dictionary header.
func Header(version uint64, createTimeUnix uint64, description string) []byte {
	buf := make([]byte, 0, 272)
	buf = appendU64(buf, version)
	buf = appendU64(buf, createTimeUnix)
	desc := []byte(description)
	descField := make([]byte, 256)
	copy(descField, desc)
	return append(append(buf), descField...)
}

// PosTable encodes a length-prefixed list of 6-tuples.
func PosTable(entries [][6]string) []byte {
	buf := appendU32(nil, uint32(len(entries)))
	for _, e := range entries {
		for _, f := range e {
			buf = String16(buf, f)
		}
	}
	return buf
}

// ConnectionMatrix encodes "left_size:u16, right_size:u16, i16[left*right]"
// in right-major order (index = right*numLeft+left).
func ConnectionMatrix(numLeft, numRight int, cost func(left, right uint16) int16) []byte {
	buf := appendU16(nil, uint16(numLeft))
	buf = appendU16(buf, uint16(numRight))
	for right := 0; right < numRight; right++ {
		for left := 0; left < numLeft; left++ {
			var tmp [2]byte
			binary.LittleEndian.PutUint16(tmp[:], uint16(cost(uint16(left), uint16(right))))
			buf = append(buf, tmp[:]...)
		}
	}
	return buf
}

// CategoryRange is one (lo, hi, mask) entry of the binary character
// category table embedded in a grammar block.
type CategoryRange struct {
	Lo, Hi rune
	Mask   uint32
}

// CategoryDef is one (category bit, invoke, group, length) definition.
type CategoryDef struct {
	Bit           uint32
	Invoke, Group bool
	Length        uint32
}

// Categories encodes the binary character category table.
func Categories(ranges []CategoryRange, defs []CategoryDef) []byte {
	buf := appendU32(nil, uint32(len(ranges)))
	for _, r := range ranges {
		buf = appendU32(buf, uint32(r.Lo))
		buf = appendU32(buf, uint32(r.Hi))
		buf = appendU32(buf, r.Mask)
	}
	buf = appendU16(buf, uint16(len(defs)))
	for _, d := range defs {
		buf = appendU32(buf, d.Bit)
		var flags [2]byte
		if d.Invoke {
			flags[0] = 1
		}
		if d.Group {
			flags[1] = 1
		}
		buf = append(buf, flags[:]...)
		buf = appendU32(buf, d.Length)
	}
	return buf
}

// Grammar encodes a full grammar block: POS table, connection matrix,
// category table.
func Grammar(pos [][6]string, numLeft, numRight int, cost func(l, r uint16) int16, ranges []CategoryRange, defs []CategoryDef) []byte {
	buf := PosTable(pos)
	buf = append(buf, ConnectionMatrix(numLeft, numRight, cost)...)
	buf = append(buf, Categories(ranges, defs)...)
	return buf
}

// LexiconEntry is one surface-form/word-id-list/params/info group used to
// build a synthetic lexicon block.
type LexiconEntry struct {
	Surface  string
	PosID    uint16
	LeftID   uint16
	RightID  uint16
	Cost     int16
	Reading  string
	SplitsA  []dic.WordID
	SplitsB  []dic.WordID
}

// Lexicon encodes a full lexicon block (trie, word count, params,
// word-info) from entries, one dictionary word index per entry in order.
func Lexicon(entries []LexiconEntry) []byte {
	builder := dat.NewBuilder()
	for i, e := range entries {
		builder.Insert([]byte(e.Surface), uint32(i))
	}
	trie := builder.Freeze()

	buf := trie.Encode()
	buf = appendU32(buf, uint32(len(entries)))

	for _, e := range entries {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], e.LeftID)
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint16(tmp[:], e.RightID)
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint16(tmp[:], uint16(e.Cost))
		buf = append(buf, tmp[:]...)
	}

	offsets := make([]uint32, len(entries))
	var blob []byte
	for i, e := range entries {
		offsets[i] = uint32(len(blob))
		blob = String16(blob, e.Surface)
		blob = appendU16(blob, uint16(len([]byte(e.Surface))))
		blob = appendU16(blob, e.PosID)
		blob = String16(blob, e.Surface) // normalized form defaults to surface
		blob = appendU32(blob, uint32(dic.NewWordID(0, uint32(i))))
		blob = String16(blob, e.Reading)
		blob = wordIDList(blob, e.SplitsA)
		blob = wordIDList(blob, e.SplitsB)
		blob = wordIDList(blob, nil) // word structure
		blob = appendU32(blob, 0)    // synonym group ids
	}
	for _, off := range offsets {
		buf = appendU32(buf, off)
	}
	buf = appendU32(buf, uint32(len(blob)))
	buf = append(buf, blob...)
	return buf
}

func wordIDList(buf []byte, ids []dic.WordID) []byte {
	buf = appendU32(buf, uint32(len(ids)))
	for _, id := range ids {
		buf = appendU32(buf, uint32(id))
	}
	return buf
}
