// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dzrcobs.c and src/dzrcobs_decode.c)

package dzrcobs

// Encoding selects which engine a frame's payload was built with.
type Encoding byte

const (
	// EncodingPlain runs the zero-elimination transform with no
	// dictionary substitution.
	EncodingPlain Encoding = 0
	// EncodingDict1 interleaves tokens from the dictionary bound to
	// slot 1.
	EncodingDict1 Encoding = 1
	// EncodingDict2 interleaves tokens from the dictionary bound to
	// slot 2.
	EncodingDict2 Encoding = 2
	// encodingReserved is never produced by this package; a frame
	// claiming it decodes as ErrBadEncodedPayload.
	encodingReserved Encoding = 3
)

// DictSlot names one of the two dictionary slots an Encoder or a Decode
// call may bind.
type DictSlot int

const (
	Dict1 DictSlot = 1
	Dict2 DictSlot = 2
)

// encoder is a bounds-checked forward cursor over a caller-supplied
// destination slice, plus the running CRC of everything written through
// it. put is the only way bytes reach dst; every codec engine writes
// through one of these rather than indexing dst directly.
type encoder struct {
	dst   []byte
	pos   int
	crc   byte
	stats *Stats // optional; nil in internal unit tests that build an encoder directly
}

func (w *encoder) put(b byte) error {
	if w.pos >= len(w.dst) {
		return ErrOverflow
	}
	w.dst[w.pos] = b
	w.pos++
	return nil
}

// backWriter is the decode-side counterpart: a bounds-checked cursor that
// fills dst from the high end downward, since Reverse-COBS decode runs
// back-to-front and the payload's final length is only known once
// decoding finishes.
type backWriter struct {
	dst []byte
	pos int // index of the next slot to be written, moving toward 0
}

func newBackWriter(dst []byte) *backWriter {
	return &backWriter{dst: dst, pos: len(dst)}
}

func (w *backWriter) put(b byte) error {
	if w.pos <= 0 {
		return ErrOverflow
	}
	w.pos--
	w.dst[w.pos] = b
	return nil
}

// Encoder assembles one DZRCOBS frame at a time: SetDictionary any number
// of times, then Begin, one or more Feed calls, and End. After End the
// Encoder is consumed; call Begin again to start a new frame (dictionary
// bindings persist across frames).
type Encoder struct {
	dst []byte
	enc *encoder

	encoding Encoding
	user6    byte
	dict1    *Dictionary
	dict2    *Dictionary
	active   *Dictionary // the slot's dictionary selected by encoding, or nil for plain

	plainCode uint8
	dictSt    dictState

	started bool
	ended   bool

	Stats Stats
}

// NewEncoder returns an Encoder with no dictionaries bound and no frame
// in progress.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// SetDictionary binds d to slot, replacing any previous binding. Passing
// a nil d unbinds the slot.
func (e *Encoder) SetDictionary(slot DictSlot, d *Dictionary) error {
	switch slot {
	case Dict1:
		e.dict1 = d
	case Dict2:
		e.dict2 = d
	default:
		return ErrBadArg
	}
	return nil
}

// Begin starts a new frame, writing into dst starting at index 0. user6
// must be in 1..63. If encoding selects a dictionary slot, that slot must
// already be bound via SetDictionary.
func (e *Encoder) Begin(encoding Encoding, dst []byte, user6 byte) error {
	if dst == nil || len(dst) < frameHeaderSize {
		return ErrBadArg
	}
	if user6 < minUserTag || user6 > maxUserTag {
		return ErrBadArg
	}

	var active *Dictionary
	switch encoding {
	case EncodingPlain:
		active = nil
	case EncodingDict1:
		if e.dict1 == nil {
			return ErrNoDictionaryToDecode
		}
		active = e.dict1
	case EncodingDict2:
		if e.dict2 == nil {
			return ErrNoDictionaryToDecode
		}
		active = e.dict2
	default:
		return ErrBadArg
	}

	e.dst = dst
	e.Stats = Stats{}
	e.enc = &encoder{dst: dst, crc: crcInit, stats: &e.Stats}
	e.encoding = encoding
	e.user6 = user6
	e.active = active
	e.plainCode = 1
	e.dictSt = newDictState()
	e.started = true
	e.ended = false
	return nil
}

// Feed encodes src incrementally, continuing from wherever the previous
// Feed (or Begin) left off. It requires room in the remaining
// destination for MaxEncodedForEncoding(e.encoding, len(src)) +
// frameHeaderSize bytes; this is a pessimistic, position-independent check
// (spec Open Question O4), not a precise one, so Feed never leaves the
// destination straddling a partially written run. The bound is
// mode-aware: dictionary-mode frames need a code byte every 30 literal
// bytes instead of plain mode's 126, so using the plain-mode bound here
// would under-reserve and a well-formed frame could then fail with
// ErrOverflow partway through.
func (e *Encoder) Feed(src []byte) error {
	if !e.started || e.ended {
		return ErrNotInitialized
	}
	if len(src) == 0 {
		return nil
	}

	remaining := len(e.dst) - e.enc.pos
	if remaining < MaxEncodedForEncoding(e.encoding, len(src))+frameHeaderSize {
		return ErrOverflow
	}

	e.Stats.BytesIn += len(src)

	if e.encoding == EncodingPlain {
		code, err := plainEncodeRun(e.enc, e.plainCode, src)
		e.plainCode = code
		return err
	}
	return dictEncodeRun(e.enc, e.active, &e.dictSt, src)
}

// End writes the frame's trailer (final run-length code where
// applicable, the encoding byte, and the CRC) and returns the total
// number of bytes written to dst. After End, the Encoder is consumed:
// further Feed calls return ErrNotInitialized until Begin is called
// again.
func (e *Encoder) End() (int, error) {
	if !e.started || e.ended {
		return 0, ErrNotInitialized
	}

	var err error
	if e.encoding == EncodingPlain {
		err = plainEncodeFinal(e.enc, e.plainCode)
	} else {
		err = dictEncodeFinal(e.enc, &e.dictSt)
	}
	if err != nil {
		return 0, err
	}

	encByte := packEncodingByte(e.user6, e.encoding)
	e.enc.crc = crc8Step(e.enc.crc, encByte)
	if err := e.enc.put(encByte); err != nil {
		return 0, err
	}

	crc := e.enc.crc
	if crc == 0 {
		crc = crcZeroRemap
	}
	if err := e.enc.put(crc); err != nil {
		return 0, err
	}

	e.ended = true
	e.Stats.BytesOut = e.enc.pos
	return e.enc.pos, nil
}

// Decode verifies and decodes one frame from src (the byte range before
// the transport's trailing 0x00 delimiter; the delimiter itself must not
// be included). It writes the decoded payload right-aligned into dst and
// returns the slice of dst actually used, the received user6 tag, and
// any error. dict1/dict2 may be nil if the caller does not expect
// dictionary-mode frames; a frame whose encoding needs an unbound slot
// returns ErrNoDictionaryToDecode.
func Decode(src []byte, dst []byte, dict1, dict2 *Dictionary) (decoded []byte, user6 byte, err error) {
	if len(src) < minDecodeLen {
		return nil, 0, ErrBadArg
	}

	gotCRC := src[len(src)-1]
	if gotCRC == 0 {
		return nil, 0, ErrBadEncodedPayload
	}

	body := src[:len(src)-1]
	crc := crc8(body)
	wantCRC := crc
	if wantCRC == 0 {
		wantCRC = crcZeroRemap
	}
	if gotCRC != wantCRC {
		return nil, 0, ErrCRC
	}

	encByte := body[len(body)-1]
	user6, encoding := unpackEncodingByte(encByte)

	if encoding == encodingReserved {
		return nil, 0, ErrBadEncodedPayload
	}

	var dict *Dictionary
	switch encoding {
	case EncodingDict1:
		if dict1 == nil {
			return nil, 0, ErrNoDictionaryToDecode
		}
		dict = dict1
	case EncodingDict2:
		if dict2 == nil {
			return nil, 0, ErrNoDictionaryToDecode
		}
		dict = dict2
	}

	payload := body[:len(body)-1]
	w := newBackWriter(dst)

	if encoding == EncodingPlain {
		if err := plainDecode(payload, w); err != nil {
			return nil, 0, err
		}
	} else {
		if err := dictDecode(payload, dict, w); err != nil {
			return nil, 0, err
		}
	}

	return dst[w.pos:], user6, nil
}
