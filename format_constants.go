// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs)

package dzrcobs

// Wire format constants for the DZRCOBS frame, the REVERSE-COBS
// zero-elimination transform, and the dictionary blob layout.

// Code-byte jump sentinels: the value a run-length byte takes when a block
// hits its maximum length without an intervening zero.
//
// Plain mode spends the full 7 low bits on the run length (jump at 126
// bytes). Dictionary mode reserves two of those bits (nextIsDict,
// nextIsZero below) as boundary markers, so only 5 bits remain for the
// run length, moving its jump threshold down to 30 bytes. Overlaying the
// markers on top of a full 7-bit length field, as a literal reading of the
// source would suggest, corrupts the length arithmetic; narrowing the
// field is the only way both can coexist (see DESIGN.md, O1).
const (
	plainJump = 0x7F // plain-mode run length sentinel: 126 bytes per code
	dictJump  = 0x1F // dictionary-mode run length sentinel: 30 bytes per code
)

// Dictionary-mode code byte layout: bit 0x80 distinguishes a dictionary
// token from a plain code byte. Of the remaining 7 bits, the low 5 carry
// the run length/jump value (see dictJump) and two marker bits record what
// precedes the block that code byte closes. A jump code byte (the length
// field alone equal to dictJump) never carries a marker: the marker on the
// next non-jump code byte after it applies to the whole chain of runs that
// code closes, and the decoder reinserts a zero only to the left of the
// chain's first run.
const (
	dictTokenBit = 0x80 // set on a code byte: the low 7 bits are a dictionary index
	dictLenMask  = 0x1F // low bits of a plain code byte in dictionary mode: the run length
	nextIsDict   = 0x20 // marker: the block this code closes was preceded by a dictionary token
	nextIsZero   = 0x40 // marker: the block this code closes was preceded by an eliminated zero
)

// Frame trailer layout.
const (
	frameHeaderSize = 2    // encoding byte + CRC, appended by End
	crcZeroRemap    = 0xFF // emitted in place of a computed CRC of 0x00
	minDecodeLen    = 3    // one payload byte + encoding byte + CRC (O3)
)

// User tag bounds: user6 is a 6-bit tag, required non-zero so the encoding
// byte (user6<<2 | encoding) can never collide with the 0x00 delimiter.
const (
	minUserTag = 1
	maxUserTag = 63
)

// Dictionary blob bounds (spec §3).
const (
	minWordLen      = 2
	maxWordLen      = 5
	maxDictEntries  = 126
	maxDictStrata   = 4
	dictLenDigitLow = '0' + minWordLen
	dictLenDigitHi  = '0' + maxWordLen
)

// maxOverheadPer is the run length covered by a single plain-mode code byte
// (126): ⌈n/126⌉ extra bytes of overhead in the worst case.
const maxOverheadPer = 126

// maxOverheadPerDict is the run length covered by a single dictionary-mode
// code byte: dictJump-1 (30) literal bytes before a jump sentinel must be
// emitted, far tighter than plain mode's 126-byte runs because the 5-bit
// length field (see dictJump, O1) leaves no room for the other two bits a
// 7-bit field would have had.
const maxOverheadPerDict = dictJump - 1

// MaxEncoded returns the worst-case size of the codec-byte region for a
// plain-mode (EncodingPlain) payload of n bytes: n plus ⌈n/126⌉ bytes of
// run-length overhead, plus one extra byte when n == 0 (the lone initial
// code byte with nothing to carry). It does not include the 2-byte trailer
// (encoding byte + CRC) or the transport's trailing 0x00 delimiter; callers
// needing the full frame size add frameHeaderSize themselves, matching the
// encoder's own incremental overflow check (spec O4).
//
// Dictionary-mode frames need MaxEncodedForEncoding instead: their
// narrower run-length field makes this bound too small to be safe.
func MaxEncoded(n int) int {
	return maxEncoded(n, maxOverheadPer)
}

// MaxEncodedForEncoding returns the worst-case size of the codec-byte
// region for a payload of n bytes under the given encoding. EncodingPlain
// is identical to MaxEncoded; EncodingDict1/EncodingDict2 use the
// dictionary engine's tighter 30-byte run length (maxOverheadPerDict)
// instead of plain mode's 126-byte one, since a dictionary frame's code
// bytes carry two boundary-marker bits a plain frame's do not (see O1).
// The dictionary engine emits a jump code as soon as a run is full and
// still closes the following (possibly empty) run with its own code, so
// the dictionary-mode bound is n + ⌊n/30⌋ + 1. Dictionary substitution can
// only ever shrink the payload further, so this bound (computed as if
// every byte fell through to a literal run) is always safe, if
// pessimistic, for dictionary-mode input.
func MaxEncodedForEncoding(encoding Encoding, n int) int {
	if encoding == EncodingPlain {
		return MaxEncoded(n)
	}
	return n + n/maxOverheadPerDict + 1
}

func maxEncoded(n, runLen int) int {
	overhead := (n + runLen - 1) / runLen
	if n == 0 {
		overhead++
	}
	return n + overhead
}
