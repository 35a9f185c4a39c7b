package dzrcobs

import (
	"bytes"
	"testing"
)

func packDict(entries ...[]byte) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteByte(byte('0' + len(e)))
		buf.Write(e)
	}
	buf.WriteByte(0x00)
	return buf.Bytes()
}

func TestValidateDictionary(t *testing.T) {
	tests := []struct {
		name    string
		blob    []byte
		wantErr error
	}{
		{
			name: "valid two strata",
			blob: packDict([]byte("ab"), []byte("cd"), []byte("efg")),
		},
		{
			name:    "empty",
			blob:    []byte{},
			wantErr: ErrBadArg,
		},
		{
			name:    "word size out of range",
			blob:    packDict([]byte("a")),
			wantErr: ErrDictBadWordSize,
		},
		{
			name:    "declared length past end",
			blob:    []byte{'3', 'a', 'b'},
			wantErr: ErrDictOutOfBounds,
		},
		{
			name:    "not sorted within stratum",
			blob:    packDict([]byte("bb"), []byte("aa")),
			wantErr: ErrDictNotSorted,
		},
		{
			name:    "duplicate within stratum",
			blob:    packDict([]byte("aa"), []byte("aa")),
			wantErr: ErrDictNotSorted,
		},
		{
			name:    "zero-length word after four strata",
			blob:    packDict([]byte("aa"), []byte("bbb"), []byte("cccc"), []byte("ddddd"), []byte("eeeeee")[:0]),
			wantErr: ErrDictBadWordSize,
		},
		{
			name:    "trailing bytes past terminator",
			blob:    append(packDict([]byte("aa")), 'x'),
			wantErr: ErrDictEarlierEnd,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDictionary(tc.blob)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err != tc.wantErr {
				t.Fatalf("got=%v want=%v", err, tc.wantErr)
			}
		})
	}
}

func TestDictionary_GetWord(t *testing.T) {
	blob := packDict([]byte("aa"), []byte("bb"), []byte("ccc"))
	d, err := NewDictionary(blob)
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	cases := []struct {
		idx  int
		want string
	}{
		{0, "aa"},
		{1, "bb"},
		{2, "ccc"},
	}
	for _, c := range cases {
		got, err := d.GetWord(c.idx)
		if err != nil {
			t.Fatalf("GetWord(%d) failed: %v", c.idx, err)
		}
		if string(got) != c.want {
			t.Fatalf("GetWord(%d)=%q want=%q", c.idx, got, c.want)
		}
	}

	if _, err := d.GetWord(3); err != ErrWordNotFoundOnDictionary {
		t.Fatalf("GetWord(3): got=%v want=%v", err, ErrWordNotFoundOnDictionary)
	}
	if _, err := d.GetWord(-1); err != ErrWordNotFoundOnDictionary {
		t.Fatalf("GetWord(-1): got=%v want=%v", err, ErrWordNotFoundOnDictionary)
	}
}

func TestDictionary_SearchLongest(t *testing.T) {
	blob := packDict([]byte("aa"), []byte("zz"), []byte("aab"))
	d, err := NewDictionary(blob)
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	// "aab..." matches both the 2-byte "aa" and the 3-byte "aab"; O2
	// decided shortest-stratum-first, so the 2-byte match wins.
	idx, n, ok := d.SearchLongest([]byte("aabx"))
	if !ok {
		t.Fatal("expected a match")
	}
	if n != 2 {
		t.Fatalf("matched length=%d want=2 (shortest-first per O2)", n)
	}
	word, err := d.GetWord(idx)
	if err != nil {
		t.Fatalf("GetWord failed: %v", err)
	}
	if string(word) != "aa" {
		t.Fatalf("matched word=%q want=%q", word, "aa")
	}

	if _, _, ok := d.SearchLongest([]byte("q")); ok {
		t.Fatal("expected no match for unrelated key")
	}
	if _, _, ok := d.SearchLongest([]byte("a")); ok {
		t.Fatal("expected no match for a key shorter than every word")
	}
}

func TestDictionary_Entries(t *testing.T) {
	blob := packDict([]byte("aa"), []byte("bb"), []byte("ccc"))
	d, err := NewDictionary(blob)
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	entries := d.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"aa", "bb", "ccc"} {
		if entries[i].GlobalIndex != i+1 {
			t.Fatalf("entry %d: GlobalIndex=%d want=%d", i, entries[i].GlobalIndex, i+1)
		}
		if string(entries[i].Word) != want {
			t.Fatalf("entry %d: Word=%q want=%q", i, entries[i].Word, want)
		}
	}
}

func TestDefaultDictionary_ValidatesAtInit(t *testing.T) {
	if DefaultDictionaryContext == nil {
		t.Fatal("DefaultDictionaryContext not initialized")
	}
	if len(DefaultDictionaryContext.Entries()) == 0 {
		t.Fatal("DefaultDictionaryContext has no entries")
	}
}
