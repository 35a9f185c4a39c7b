// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

package dzrcobs

// packEncodingByte combines a 6-bit user tag and a 2-bit encoding
// selector into the frame's encoding byte. Callers must have already
// validated user6 ∈ 1..63, which guarantees the result is non-zero.
func packEncodingByte(user6 byte, enc Encoding) byte {
	return (user6 << 2) | byte(enc&0x03)
}

// unpackEncodingByte splits a frame's encoding byte back into the user
// tag and the encoding selector.
func unpackEncodingByte(b byte) (user6 byte, enc Encoding) {
	return b >> 2, Encoding(b & 0x03)
}
