// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dzrcobs_decode.c)

package dzrcobs

// plainDecode consumes src back-to-front, the plain-mode counterpart of
// plainEncodeRun, writing the reconstructed literal bytes (and reinserting
// the eliminated zeros) through w. w is expected to already be positioned
// at the end of the destination region for this frame.
//
// The last byte of src is the run-length code for the final block;
// earlier bytes alternate between literal runs and further codes. A code
// of 1 denotes an empty run; if nothing remains to its left, it is simply
// the sentinel for an empty (or exhausted) frame and contributes no byte.
// Every run (empty or not) is followed, once its literals are copied, by a
// reinserted zero when more of src remains to the left, unless the block
// immediately preceding it in the stream (the next byte scanning leftward)
// is itself the jump sentinel — a run that hit the jump threshold was cut
// off by run length, not by an eliminated zero.
func plainDecode(src []byte, w *backWriter) error {
	pos := len(src) - 1

	for pos >= 0 {
		code := src[pos]
		pos--

		n := int(code) - 1
		if n < 0 {
			return ErrBadEncodedPayload
		}

		if n == 0 {
			if pos < 0 {
				break
			}
			if src[pos] != plainJump {
				if err := w.put(0); err != nil {
					return err
				}
			}
			continue
		}

		for i := 0; i < n; i++ {
			if pos < 0 {
				return ErrBadEncodedPayload
			}
			b := src[pos]
			pos--
			if b == 0 {
				return ErrBadEncodedPayload
			}
			if err := w.put(b); err != nil {
				return err
			}
		}

		if pos >= 0 && src[pos] != plainJump {
			if err := w.put(0); err != nil {
				return err
			}
		}
	}

	return nil
}
