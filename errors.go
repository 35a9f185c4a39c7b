// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs)

package dzrcobs

import "errors"

// Sentinel errors returned by the codec, grouped by the taxonomy of the
// wire contract: argument errors, buffer bounds, stream integrity, and
// dictionary configuration. Core encode/decode paths return these directly;
// they are never wrapped on the hot path.
var (
	// ErrBadArg is returned when a caller contract is violated: nil
	// pointers, an out-of-range dictionary slot, a destination buffer
	// shorter than the minimum frame header, etc.
	ErrBadArg = errors.New("dzrcobs: bad argument")
	// ErrNotInitialized is returned when Feed or End is called on an
	// encoder context that has not had Begin called, or has already
	// been consumed by a prior End.
	ErrNotInitialized = errors.New("dzrcobs: encoder not initialized")
	// ErrOverflow is returned when an operation would write past the
	// end of the caller-supplied destination buffer.
	ErrOverflow = errors.New("dzrcobs: destination overflow")
	// ErrBadEncodedPayload is returned when the encoded region contains
	// a literal 0x00 byte or a run length that overruns it, when the CRC
	// byte is 0x00, or when the frame claims the reserved encoding
	// selector.
	ErrBadEncodedPayload = errors.New("dzrcobs: invalid encoded payload")
	// ErrCRC is returned when the trailer CRC does not match the
	// recomputed CRC over the frame's payload and encoding byte.
	ErrCRC = errors.New("dzrcobs: crc mismatch")
	// ErrNoDictionaryToDecode is returned when a frame's encoding byte
	// selects a dictionary slot that has no bound Dictionary.
	ErrNoDictionaryToDecode = errors.New("dzrcobs: no dictionary bound for this frame's encoding")
	// ErrWordNotFoundOnDictionary is returned when a dictionary token's
	// index has no corresponding entry in the bound dictionary.
	ErrWordNotFoundOnDictionary = errors.New("dzrcobs: dictionary word not found")

	// ErrDictBadWordSize is returned by dictionary validation when an
	// entry's length digit is outside '2'..'5'.
	ErrDictBadWordSize = errors.New("dzrcobs: dictionary entry has invalid word size")
	// ErrDictWordCountExceeded is returned when a dictionary declares
	// more than 126 entries.
	ErrDictWordCountExceeded = errors.New("dzrcobs: dictionary word count exceeds 126")
	// ErrDictNotSorted is returned when a stratum's words are not in
	// strictly ascending lexicographic order (this also covers
	// duplicate words within one stratum).
	ErrDictNotSorted = errors.New("dzrcobs: dictionary words not sorted within stratum")
	// ErrDictTooManyStrata is returned when a dictionary declares more
	// than 4 distinct word lengths.
	ErrDictTooManyStrata = errors.New("dzrcobs: dictionary has more than 4 word-length strata")
	// ErrDictOutOfBounds is returned when the blob does not end with a
	// 0x00 byte exactly where the last word's entries end.
	ErrDictOutOfBounds = errors.New("dzrcobs: dictionary missing terminating zero at expected offset")
	// ErrDictEarlierEnd is returned when the declared blob size extends
	// past the terminating 0x00 byte.
	ErrDictEarlierEnd = errors.New("dzrcobs: dictionary size extends past terminator")
)
