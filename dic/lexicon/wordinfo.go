package lexicon

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/morana-nlp/morana/dic"
)

// WordInfoTable holds variable-length word-info records, addressed by a
// per-word-index offset table into a shared blob.
type WordInfoTable struct {
	offsets []uint32
	blob    []byte
}

func parseWordInfos(data []byte, offset, wordCount int) (*WordInfoTable, int, error) {
	offsets := make([]uint32, wordCount)
	for i := 0; i < wordCount; i++ {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		offsets[i] = v
		offset = next
	}
	blobLen, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	end := offset + int(blobLen)
	if end > len(data) {
		return nil, 0, errBounds
	}
	return &WordInfoTable{offsets: offsets, blob: data[offset:end]}, end, nil
}

// Get decodes the record at index. See Subset for which fields get
// populated.
func (t *WordInfoTable) Get(index uint32, subset Subset) (WordInfo, error) {
	if int(index) >= len(t.offsets) {
		return WordInfo{}, errBounds
	}
	p := int(t.offsets[index])
	blob := t.blob

	surface, p, err := readField16(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	headLen, p, err := readU16(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	posID, p, err := readU16(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	normalized, p, err := readField16(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	dictForm, p, err := readU32From(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	reading, p, err := readField16(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	splitsA, p, err := readWordIDList(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	splitsB, p, err := readWordIDList(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	structure, p, err := readWordIDList(blob, p)
	if err != nil {
		return WordInfo{}, err
	}
	synonyms, _, err := readU32List(blob, p)
	if err != nil {
		return WordInfo{}, err
	}

	info := WordInfo{
		HeadWordLength:       int(headLen),
		PosID:                posID,
		DictionaryFormWordID: dic.WordID(dictForm),
	}
	if subset&SubsetSurface != 0 {
		info.Surface = surface
	}
	if subset&SubsetNormalizedForm != 0 {
		info.NormalizedForm = normalized
	}
	if subset&SubsetReadingForm != 0 {
		info.ReadingForm = reading
	}
	if subset&SubsetSplits != 0 {
		info.SplitsA = splitsA
		info.SplitsB = splitsB
		info.WordStructure = structure
	}
	if subset&SubsetSynonymGroups != 0 {
		info.SynonymGroupIDs = synonyms
	}
	if subset&SubsetDictionaryForm == 0 {
		info.DictionaryFormWordID = dic.Invalid
	}
	return info, nil
}

func readU16(data []byte, offset int) (uint16, int, error) {
	if offset+2 > len(data) {
		return 0, 0, errBounds
	}
	return binary.LittleEndian.Uint16(data[offset:]), offset + 2, nil
}

func readU32From(data []byte, offset int) (uint32, int, error) {
	return readU32(data, offset)
}

func readField16(data []byte, offset int) (string, int, error) {
	units, offset, err := readU16(data, offset)
	if err != nil {
		return "", 0, err
	}
	end := offset + int(units)*2
	if end > len(data) {
		return "", 0, errBounds
	}
	codeUnits := make([]uint16, units)
	for i := range codeUnits {
		codeUnits[i] = binary.LittleEndian.Uint16(data[offset+i*2:])
	}
	return string(utf16.Decode(codeUnits)), end, nil
}

func readWordIDList(data []byte, offset int) ([]dic.WordID, int, error) {
	count, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dic.WordID, count)
	for i := range out {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		out[i] = dic.WordID(v)
		offset = next
	}
	return out, offset, nil
}

func readU32List(data []byte, offset int) ([]uint32, int, error) {
	count, offset, err := readU32(data, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]uint32, count)
	for i := range out {
		v, next, err := readU32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		out[i] = v
		offset = next
	}
	return out, offset, nil
}
