package dzrcobs

import "testing"

// s6s7s8Dict is the example dictionary used by spec scenarios S6-S8.
func s6s7s8Dict(t *testing.T) *Dictionary {
	t.Helper()
	blob := packDict([]byte{0x01, 0x01}, []byte{0x02, 0x00, 0x02}, []byte{0x03, 0x00, 0x00, 0x03}, []byte{0x04, 0x00, 0x00, 0x00, 0x04})
	d, err := NewDictionary(blob)
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}
	return d
}

func encodeDictFrame(t *testing.T, dict *Dictionary, src []byte) []byte {
	t.Helper()
	dst := make([]byte, MaxEncodedForEncoding(EncodingDict1, len(src))+frameHeaderSize)
	w := &encoder{dst: dst, crc: crcInit}
	s := newDictState()
	if err := dictEncodeRun(w, dict, &s, src); err != nil {
		t.Fatalf("dictEncodeRun failed: %v", err)
	}
	if err := dictEncodeFinal(w, &s); err != nil {
		t.Fatalf("dictEncodeFinal failed: %v", err)
	}
	return dst[:w.pos]
}

func decodeDictPayload(t *testing.T, dict *Dictionary, payload []byte, maxOut int) []byte {
	t.Helper()
	dst := make([]byte, maxOut)
	w := newBackWriter(dst)
	if err := dictDecode(payload, dict, w); err != nil {
		t.Fatalf("dictDecode failed: %v", err)
	}
	return dst[w.pos:]
}

func TestDictCodec_RoundTrip(t *testing.T) {
	dict := s6s7s8Dict(t)

	cases := []struct {
		name string
		src  []byte
	}{
		{"plain run only, no zero or dict hit", []byte("AB")},
		{"single dictionary hit only", []byte{0x01, 0x01}},
		{"dict hit then literal", []byte{0x01, 0x01, 'x'}},
		{"literal then dict hit", []byte{'x', 0x01, 0x01}},
		{"zero then literal", []byte{0x00, 'x'}},
		{"literal then zero", []byte{'x', 0x00}},
		{"dict hit then zero", []byte{0x01, 0x01, 0x00}},
		{"zero then dict hit", []byte{0x00, 0x01, 0x01}},
		{"two adjacent dict hits", []byte{0x01, 0x01, 0x02, 0x00, 0x02}},
		{"empty input", []byte{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := encodeDictFrame(t, dict, tc.src)
			got := decodeDictPayload(t, dict, payload, len(tc.src)+8)
			if string(got) != string(tc.src) {
				t.Fatalf("round trip mismatch: got=%v want=%v (payload=%v)", got, tc.src, payload)
			}
		})
	}
}

// A long literal run that hits the jump threshold, with no zero or
// dictionary hit anywhere, must round-trip without a spurious zero: the
// jump code byte never carries a marker, verifying emitJump's contract.
func TestDictCodec_JumpInterruptedRunNoMarker(t *testing.T) {
	dict := s6s7s8Dict(t)

	src := make([]byte, dictJump-1+5)
	for i := range src {
		src[i] = byte(1 + i%200)
		for src[i] == 0 {
			src[i] = byte(2 + i%200)
		}
	}

	payload := encodeDictFrame(t, dict, src)
	got := decodeDictPayload(t, dict, payload, len(src)+8)
	if string(got) != string(src) {
		t.Fatalf("round trip mismatch for jump-interrupted run: got=%v want=%v", got, src)
	}
}

// Regression test for the pendingMask/isFirstByteInBuffer bootstrap bug: a
// frame that opens with a plain literal run and contains no zero byte and
// no dictionary hit anywhere must not have a zero spuriously reinserted,
// even though the encoder's state machine bootstraps as if the previous
// block were a zero.
func TestDictCodec_NoSpuriousZeroOnPlainOnlyFrame(t *testing.T) {
	dict := s6s7s8Dict(t)
	src := []byte("AB")

	payload := encodeDictFrame(t, dict, src)

	// The only code byte should carry neither marker bit.
	codeByte := payload[len(payload)-1]
	if codeByte&nextIsZero != 0 {
		t.Fatalf("code byte %#x wrongly carries nextIsZero on a frame with no zero byte", codeByte)
	}
	if codeByte&nextIsDict != 0 {
		t.Fatalf("code byte %#x wrongly carries nextIsDict on a frame with no dictionary hit", codeByte)
	}

	got := decodeDictPayload(t, dict, payload, len(src)+4)
	if string(got) != "AB" {
		t.Fatalf("got=%v want=%q", got, "AB")
	}
}

func TestDictCodec_RejectsZeroInsideLiteralRun(t *testing.T) {
	// Malformed payload: a non-token code byte whose literal region
	// contains a raw zero, which plainDecode/dictDecode must reject since
	// a genuine zero is always eliminated into a marker bit, never left
	// as a literal.
	payload := []byte{0x00, 0x03}
	dst := make([]byte, 4)
	w := newBackWriter(dst)
	err := dictDecode(payload, s6s7s8Dict(t), w)
	if err != ErrBadEncodedPayload {
		t.Fatalf("got=%v want=%v", err, ErrBadEncodedPayload)
	}
}
