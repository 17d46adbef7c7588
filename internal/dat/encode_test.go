package dat

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.Insert([]byte("猫"), 1)
	b.Insert([]byte("猫"), 2)
	b.Insert([]byte("猫背"), 3)
	orig := b.Freeze()

	encoded := orig.Encode()
	decoded, n, err := Decode(encoded, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(encoded) {
		t.Fatalf("Decode consumed %d bytes, want %d", n, len(encoded))
	}
	if !reflect.DeepEqual(orig, decoded) {
		t.Fatalf("decoded trie does not match original:\n%+v\n%+v", orig, decoded)
	}
}
