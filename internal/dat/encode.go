package dat

import "encoding/binary"

// Encode serializes t as "u32 numStates, u32 root, numStates x i32 Base,
// numStates x i32 Check, numStates x u32 ValueOff, u32 valuesLen, valuesLen
// bytes of Values" — the binary shape the lexicon block's trie array uses.
func (t *Trie) Encode() []byte {
	n := len(t.Base)
	buf := make([]byte, 0, 8+n*4+n*4+n*4+4+len(t.Values))
	buf = appendU32(buf, uint32(n))
	buf = appendU32(buf, t.Root)
	for _, v := range t.Base {
		buf = appendU32(buf, uint32(v))
	}
	for _, v := range t.Check {
		buf = appendU32(buf, uint32(v))
	}
	for _, v := range t.ValueOff {
		buf = appendU32(buf, v)
	}
	buf = appendU32(buf, uint32(len(t.Values)))
	buf = append(buf, t.Values...)
	return buf
}

// Decode reads a Trie encoded by Encode, starting at offset, and returns
// the decoded trie plus the offset immediately after it.
func Decode(data []byte, offset int) (*Trie, int, error) {
	n, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	root, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	t := &Trie{
		Root:     root,
		Base:     make([]int32, n),
		Check:    make([]int32, n),
		ValueOff: make([]uint32, n),
	}
	for i := range t.Base {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		t.Base[i] = int32(v)
		offset = next
	}
	for i := range t.Check {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		t.Check[i] = int32(v)
		offset = next
	}
	for i := range t.ValueOff {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		t.ValueOff[i] = v
		offset = next
	}
	valuesLen, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	end := offset + int(valuesLen)
	if end > len(data) {
		return nil, 0, errTruncated
	}
	t.Values = append([]byte(nil), data[offset:end]...)
	return t, end, nil
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func readU32(data []byte, offset int) (uint32, int, error) {
	if offset+4 > len(data) {
		return 0, 0, errTruncated
	}
	return binary.LittleEndian.Uint32(data[offset:]), offset + 4, nil
}
