package dat

import "encoding/binary"

// Builder constructs a Trie by insertion, then Freeze compiles it into the
// packed double-array form. This mirrors the teacher's build-then-freeze
// lifecycle: a pointer-based tree while open, a flat array once frozen.
type Builder struct {
	root       *buildNode
	nextNodeID uint32
	frozen     bool
	values     map[uint32][]uint32 // tmpID -> payload, only while building
}

type buildNode struct {
	tmpID    uint32
	children map[byte]*buildNode
}

// NewBuilder returns an empty Builder ready to accept keys.
func NewBuilder() *Builder {
	return &Builder{
		root:       &buildNode{tmpID: 1, children: make(map[byte]*buildNode)},
		nextNodeID: 2,
		values:     make(map[uint32][]uint32),
	}
}

// Insert adds key to the trie and appends value to the list of payload
// values already associated with key's terminal node (so homographs
// sharing one surface accumulate a value list, as the lexicon's word-id
// table requires).
func (b *Builder) Insert(key []byte, value uint32) {
	if b.frozen {
		panic("dat: Insert after Freeze")
	}
	n := b.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &buildNode{tmpID: b.nextNodeID, children: make(map[byte]*buildNode)}
			b.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	b.values[n.tmpID] = append(b.values[n.tmpID], value)
}

// Freeze compiles the inserted keys into a packed Trie.
func (b *Builder) Freeze() *Trie {
	t := &Trie{Root: 1}
	t.Base = make([]int32, 2)
	t.Check = make([]int32, 2)

	states := map[uint32]uint32{b.root.tmpID: t.Root}
	queue := []*buildNode{b.root}
	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		state := states[n.tmpID]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(t.Check, labels)
		ensureIndex(t, base+int(labels[len(labels)-1])+1)
		t.Base[state] = int32(base)
		for _, label := range labels {
			target := base + int(label) + 1
			ensureIndex(t, target)
			child := n.children[label]
			states[child.tmpID] = uint32(target)
			t.Check[target] = int32(state)
			queue = append(queue, child)
		}
	}

	t.ValueOff = make([]uint32, len(t.Base))
	var blob []byte
	for tmpID, values := range b.values {
		state, ok := states[tmpID]
		if !ok || len(values) == 0 {
			continue
		}
		off := len(blob)
		blob = appendValueRecord(blob, values)
		t.ValueOff[state] = uint32(off) + 1 // reserve 0 for "no value"
	}
	t.Values = blob

	b.frozen = true
	b.root = nil
	b.values = nil
	return t
}

func appendValueRecord(blob []byte, values []uint32) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(values)))
	blob = append(blob, tmp[:n]...)
	for _, v := range values {
		n = binary.PutUvarint(tmp[:], uint64(v))
		blob = append(blob, tmp[:n]...)
	}
	return blob
}

// ReadValues decodes the value list stored at off-1 (the ValueOff
// convention: 0 means absent, N means record starts at byte N-1).
func (t *Trie) ReadValues(off uint32) []uint32 {
	if off == 0 {
		return nil
	}
	data := t.Values[off-1:]
	count, n := binary.Uvarint(data)
	data = data[n:]
	out := make([]uint32, count)
	for i := range out {
		v, k := binary.Uvarint(data)
		out[i] = uint32(v)
		data = data[k:]
	}
	return out
}

func sortedLabels(children map[byte]*buildNode) []byte {
	labels := make([]byte, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && labels[j-1] > labels[j]; j-- {
			labels[j-1], labels[j] = labels[j], labels[j-1]
		}
	}
	return labels
}

func findBase(check []int32, labels []byte) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label) + 1
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(t *Trie, idx int) {
	if idx < len(t.Base) {
		return
	}
	grow := idx + 1 - len(t.Base)
	t.Base = append(t.Base, make([]int32, grow)...)
	t.Check = append(t.Check, make([]int32, grow)...)
}
