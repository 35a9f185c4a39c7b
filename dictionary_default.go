// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dictionary_default.c)

package dzrcobs

// DefaultDictionary is a small built-in word table biased toward embedded
// telemetry and JSON-ish payloads: runs of zero bytes, a lone 0x01, and a
// CRLF pair at length 2; the zero and 0x01 sequences extended by one more
// zero byte at length 3. Substituting these as single tokens is worth more
// than the one-code-byte-per-zero cost of plain zero-elimination whenever
// they occur.
var DefaultDictionary = []byte(
	"2\x00\x00" +
		"2\x00\x01" +
		"2\x01\x00" +
		"2\x0D\x0A" +
		"3\x00\x00\x00" +
		"3\x00\x00\x01" +
		"3\x00\x01\x00" +
		"3\x01\x00\x00" +
		"\x00",
)

// DefaultDictionaryContext is DefaultDictionary, already validated and
// built. It is safe to bind directly to an Encoder or pass to Decode.
var DefaultDictionaryContext *Dictionary

func init() {
	d, err := NewDictionary(DefaultDictionary)
	if err != nil {
		panic("dzrcobs: built-in default dictionary failed validation: " + err.Error())
	}
	DefaultDictionaryContext = d
}
