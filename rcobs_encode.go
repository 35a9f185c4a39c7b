// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dzrcobs.c: dzrcobs_encode_inc_plain)

package dzrcobs

// plainEncodeRun feeds src through the plain REVERSE-COBS zero-elimination
// transform: each non-zero byte is written through w and folded into crc,
// each zero byte is elided and instead closes the current run by emitting
// its length+1 as a code byte. code is the run length carried over from
// the previous call (or 1, fresh from Begin); the updated run length is
// returned for the caller to carry forward into the next Feed or into
// End. A run that reaches the jump threshold is closed with the jump
// sentinel only once another input byte follows it; a full run at the end
// of the input is closed by plainEncodeFinal, whose code is then plainJump.
func plainEncodeRun(w *encoder, code uint8, src []byte) (uint8, error) {
	for _, b := range src {
		if code == plainJump {
			w.crc = crc8Step(w.crc, code)
			if err := w.put(code); err != nil {
				return code, err
			}
			if w.stats != nil {
				w.stats.LiteralRuns++
			}
			code = 1
		}

		if b == 0 {
			w.crc = crc8Step(w.crc, code)
			if err := w.put(code); err != nil {
				return code, err
			}
			if w.stats != nil {
				w.stats.LiteralRuns++
				w.stats.ZerosEliminated++
			}
			code = 1
			continue
		}

		w.crc = crc8Step(w.crc, b)
		if err := w.put(b); err != nil {
			return code, err
		}
		code++
	}
	return code, nil
}

// plainEncodeFinal emits the trailing run-length code at end of stream.
// Plain mode always emits it, even when code == 1 (meaning the trailing
// run held zero literal bytes, as when the input ends right on a zero or
// is empty). When the input ends on a full run, code is plainJump and the
// jump sentinel doubles as the final code.
func plainEncodeFinal(w *encoder, code uint8) error {
	w.crc = crc8Step(w.crc, code)
	if err := w.put(code); err != nil {
		return err
	}
	if w.stats != nil {
		w.stats.LiteralRuns++
	}
	return nil
}
