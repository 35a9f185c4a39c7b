// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

/*
Package dzrcobs implements DZRCOBS, a zero-elimination framing codec for
byte streams over unreliable or asynchronous channels. Every frame is
self-delimited, carries a 6-bit user tag and an 8-bit CRC, and contains
no 0x00 bytes of its own, so a receiver can resynchronise after any loss
by scanning forward to the next 0x00.

# Encode

One-shot, allocating its own buffer:

	out, err := dzrcobs.EncodeFrame(payload, &dzrcobs.EncodeOptions{
		Encoding: dzrcobs.EncodingPlain,
		User6:    1,
	})
	// append a single 0x00 before sending out on the wire

Incrementally, feeding the payload across several calls:

	enc := dzrcobs.NewEncoder()
	if err := enc.Begin(dzrcobs.EncodingPlain, dst, 1); err != nil {
		// handle err
	}
	if err := enc.Feed(chunk1); err != nil {
		// handle err
	}
	if err := enc.Feed(chunk2); err != nil {
		// handle err
	}
	n, err := enc.End()

# Dictionary-assisted frames

Binding a dictionary lets the encoder substitute a single token byte for
a whole matched word instead of copying it literally:

	dict, err := dzrcobs.NewDictionary(blob)
	enc := dzrcobs.NewEncoder()
	enc.SetDictionary(dzrcobs.Dict1, dict)
	enc.Begin(dzrcobs.EncodingDict1, dst, 1)

DefaultDictionaryContext ships a small built-in dictionary tuned for
zero-heavy telemetry and JSON-ish payloads.

# Decode

	payload, user6, err := dzrcobs.DecodeFrame(frame, &dzrcobs.DecodeOptions{
		Dict1: dict,
	})

Or from a stream of delimited frames:

	fr := dzrcobs.NewFrameReader(conn, &dzrcobs.DecodeOptions{Dict1: dict})
	for {
		payload, user6, err := fr.ReadFrame()
		if err == io.EOF {
			break
		}
		// handle payload, user6, err
	}
*/
package dzrcobs
