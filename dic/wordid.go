package dic

// WordID is a 32-bit composite identifier: the high 4 bits select a
// dictionary within a Set (0 = system, 1..14 = user), the low 28 bits are
// the word's index within that dictionary. Three values are reserved as
// sentinels rather than real dictionary entries.
type WordID uint32

const (
	dictionaryIndexShift = 28
	dictionaryIndexMask  = 0xf
	wordIndexMask        = 0x0fff_ffff

	// OOVDictionaryIndex marks a WordID synthesized by an OOV provider
	// rather than looked up from a dictionary.
	OOVDictionaryIndex = 0xf

	// BOS, EOS, and Invalid are reserved sentinels, never valid dictionary
	// or OOV indices.
	BOS     WordID = 0xffff_fffe
	EOS     WordID = 0xffff_fffd
	Invalid WordID = 0xffff_ffff
)

// NewWordID packs a dictionary index (0..14) and an in-dictionary index
// (0..0x0fff_ffff) into a WordID.
func NewWordID(dictIndex uint8, index uint32) WordID {
	return WordID(uint32(dictIndex&dictionaryIndexMask)<<dictionaryIndexShift | (index & wordIndexMask))
}

// OOV builds a WordID for a synthesized node, carrying a provider-defined
// payload (a synthetic-table index or POS id, per spec) in the low 28 bits.
func OOV(payload uint32) WordID {
	return NewWordID(OOVDictionaryIndex, payload)
}

// DictionaryIndex returns the high 4 bits.
func (w WordID) DictionaryIndex() uint8 {
	return uint8(uint32(w) >> dictionaryIndexShift & dictionaryIndexMask)
}

// Index returns the low 28 bits.
func (w WordID) Index() uint32 {
	return uint32(w) & wordIndexMask
}

// IsOOV reports whether w was synthesized rather than looked up.
func (w WordID) IsOOV() bool {
	return w != BOS && w != EOS && w != Invalid && w.DictionaryIndex() == OOVDictionaryIndex
}

// IsSentinel reports whether w is one of BOS, EOS, or Invalid.
func (w WordID) IsSentinel() bool {
	return w == BOS || w == EOS || w == Invalid
}
