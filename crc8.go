// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs, src/crc8.h)

package dzrcobs

// CRC-8 over polynomial 0xA6 (non-reflected, MSB-first), initial value 0xFF.
// The original C implementation treats the 256-entry lookup table as a
// build-time collaborator (src/crc8.h declares it `extern`, generated by the
// build, never checked in); here the table is generated once at package
// init from the polynomial, and the core only ever calls crc8Step.

const crcInit byte = 0xFF

var crc8Table = buildCRC8Table(0xA6)

// buildCRC8Table computes the 256-entry CRC-8 lookup table for the given
// polynomial using the standard MSB-first bit-by-bit construction: for each
// candidate byte value, shift left eight times, XORing in the polynomial
// whenever the shifted-out bit was 1.
func buildCRC8Table(poly byte) [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

// crc8Step feeds one byte into a running CRC-8 and returns the updated value.
func crc8Step(crc, b byte) byte {
	return crc8Table[crc^b]
}

// crc8 runs crc8Step over every byte of data, starting from crcInit.
func crc8(data []byte) byte {
	crc := crcInit
	for _, b := range data {
		crc = crc8Step(crc, b)
	}
	return crc
}
