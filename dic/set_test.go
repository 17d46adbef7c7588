package dic_test

import (
	"testing"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/dic/lexicon"
	"github.com/morana-nlp/morana/internal/dictest"
)

func buildUserDictionaryBytes() []byte {
	lex := dictest.Lexicon([]dictest.LexiconEntry{
		{Surface: "超猫", PosID: 0, LeftID: 0, RightID: 0, Cost: 50, Reading: "チョウネコ"},
	})
	buf := dictest.Header(uint64(dic.VersionUser1), 0, "test user dict")
	return append(buf, lex...)
}

func TestSetStacksSystemAndUserDictionaries(t *testing.T) {
	sysData := buildSystemDictionaryBytes()
	sys, err := dic.Load(sysData)
	if err != nil {
		t.Fatalf("Load(system): %v", err)
	}
	userData := buildUserDictionaryBytes()
	user, err := dic.Load(userData)
	if err != nil {
		t.Fatalf("Load(user): %v", err)
	}
	if user.Grammar != nil {
		t.Fatalf("user dictionary should have no grammar")
	}

	set, err := dic.NewSet(sys, user)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	var matches []lexicon.Match
	set.CommonPrefixSearch([]byte("超猫"), func(m lexicon.Match) { matches = append(matches, m) })
	if len(matches) != 1 {
		t.Fatalf("expected exactly one user-dictionary match, got %+v", matches)
	}
	if matches[0].WordID.DictionaryIndex() != 1 {
		t.Fatalf("user dictionary match should carry dictionary index 1, got %d", matches[0].WordID.DictionaryIndex())
	}

	left, right, cost, err := set.WordParam(matches[0].WordID)
	if err != nil {
		t.Fatalf("WordParam: %v", err)
	}
	if left != 0 || right != 0 || cost != 50 {
		t.Fatalf("WordParam = (%d,%d,%d)", left, right, cost)
	}
}

func TestNewSetRejectsTooManyUserDictionaries(t *testing.T) {
	sys, err := dic.Load(buildSystemDictionaryBytes())
	if err != nil {
		t.Fatalf("Load(system): %v", err)
	}
	users := make([]*dic.Dictionary, 15)
	for i := range users {
		u, err := dic.Load(buildUserDictionaryBytes())
		if err != nil {
			t.Fatalf("Load(user): %v", err)
		}
		users[i] = u
	}
	if _, err := dic.NewSet(sys, users...); err != dic.ErrTooManyUserDictionaries {
		t.Fatalf("NewSet with 15 user dicts: err = %v, want ErrTooManyUserDictionaries", err)
	}
}
