package dat

import (
	"reflect"
	"testing"
)

func buildTestTrie() *Trie {
	b := NewBuilder()
	b.Insert([]byte("猫"), 1)
	b.Insert([]byte("猫"), 2) // homograph: second word id for the same surface
	b.Insert([]byte("猫背"), 3)
	b.Insert([]byte("犬"), 4)
	return b.Freeze()
}

func TestCommonPrefixSearch(t *testing.T) {
	tr := buildTestTrie()

	type hit struct {
		length int
		values []uint32
	}
	var got []hit
	tr.CommonPrefixSearch([]byte("猫背"), func(state uint32, length int) {
		got = append(got, hit{length, tr.ReadValues(tr.ValueOff[state])})
	})

	want := []hit{
		{len([]byte("猫")), []uint32{1, 2}},
		{len([]byte("猫背")), []uint32{3}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CommonPrefixSearch = %+v, want %+v", got, want)
	}
}

func TestLookupMiss(t *testing.T) {
	tr := buildTestTrie()
	if _, ok := tr.Lookup([]byte("鳥")); ok {
		t.Fatalf("Lookup(鳥) should miss")
	}
	if _, ok := tr.Lookup([]byte("猫背")); !ok {
		t.Fatalf("Lookup(猫背) should hit")
	}
}

func TestLookupPrefixIsNotAMatch(t *testing.T) {
	tr := buildTestTrie()
	// "猫" (1 rune) is itself a key, but a trie built only with "猫背" and no
	// shorter key should not report a match at the prefix.
	b := NewBuilder()
	b.Insert([]byte("猫背"), 1)
	tr2 := b.Freeze()
	if _, ok := tr2.Lookup([]byte("猫")); ok {
		t.Fatalf("Lookup(猫) should miss: only 猫背 was inserted")
	}
	if state, ok := tr2.Lookup([]byte("猫背")); !ok {
		t.Fatalf("Lookup(猫背) should hit")
	} else if got := tr2.ReadValues(tr2.ValueOff[state]); !reflect.DeepEqual(got, []uint32{1}) {
		t.Fatalf("values = %v, want [1]", got)
	}
	_ = tr
}
