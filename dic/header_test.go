package dic_test

import (
	"testing"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/internal/dictest"
)

func TestParseHeaderRejectsUnknownVersion(t *testing.T) {
	buf := dictest.Header(0x1234, 0, "bogus")
	if _, _, err := dic.ParseHeader(buf); err == nil {
		t.Fatalf("expected ErrUnsupportedVersion")
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	if _, _, err := dic.ParseHeader([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected ErrInvalidDictionary for truncated header")
	}
}

func TestParseHeaderDescriptionTrimsPadding(t *testing.T) {
	buf := dictest.Header(uint64(dic.VersionSystem2), 1600000000, "sample description")
	h, n, err := dic.ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("ParseHeader consumed %d bytes, want %d", n, len(buf))
	}
	if h.Description != "sample description" {
		t.Fatalf("Description = %q", h.Description)
	}
	if !h.IsSystem() || h.IsUser() {
		t.Fatalf("VersionSystem2 header should report IsSystem")
	}
}
