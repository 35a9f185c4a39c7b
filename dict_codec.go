// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dzrcobs.c and src/dzrcobs_decode.c, generalized to interleave
// dictionary tokens per spec-level design notes on the dictionary codec)

package dzrcobs

// blockKind is the "previousCode" state of spec §4.5's dictionary encoder
// state machine: what kind of thing was just emitted or consumed.
type blockKind int

const (
	blockZero blockKind = iota
	blockBlock
	blockDictionary
)

// dictState carries a dictionary-mode encoder's state across Feed calls:
// the run-length code, which kind of event last happened, which marker bit
// is pending for the next emitted code byte, and whether any byte has been
// processed yet in this frame.
//
// pendingMask's neutral value is 0. It is set to nextIsZero or nextIsDict
// only by an actual eliminated zero or dictionary hit, never invented from
// the state machine's initial (bootstrap) previousCode value — that
// bootstrap value is named Zero for symmetry with a real post-zero state,
// but isFirstByteInBuffer exists precisely to keep it from being mistaken
// for one: without that guard, a frame that opens with an uninterrupted
// run of plain bytes and no zero anywhere would still inherit a stray
// "ends in zero" marker from having started in the Zero state, and the
// decoder would reinsert a zero that was never there.
type dictState struct {
	code    uint8
	prev    blockKind
	pending byte
	first   bool
}

func newDictState() dictState {
	return dictState{code: 1, prev: blockZero, first: true}
}

// emitBoundary closes the current run, writing its length (OR'd with
// whatever marker is pending) as a code byte, and resets the run length.
func (s *dictState) emitBoundary(w *encoder) error {
	b := s.code | s.pending
	w.crc = crc8Step(w.crc, b)
	if err := w.put(b); err != nil {
		return err
	}
	if w.stats != nil {
		w.stats.LiteralRuns++
		if s.pending == nextIsZero {
			w.stats.ZerosEliminated++
		}
	}
	s.code = 1
	return nil
}

// emitJump closes a run that hit the length limit on its own, with no
// zero or dictionary hit involved; per spec Open Question O1 a jump code
// never carries a marker bit.
func (s *dictState) emitJump(w *encoder) error {
	w.crc = crc8Step(w.crc, dictJump)
	if err := w.put(dictJump); err != nil {
		return err
	}
	if w.stats != nil {
		w.stats.LiteralRuns++
	}
	s.code = 1
	return nil
}

// dictEncodeRun feeds src through the dictionary-interleaved codec engine,
// trying a dictionary prefix match (shortest word size first, see
// SearchLongest) at every position before falling back to plain
// zero-elimination byte by byte.
func dictEncodeRun(w *encoder, dict *Dictionary, s *dictState, src []byte) error {
	i := 0
	for i < len(src) {
		if dict != nil {
			if idx, n, ok := dict.SearchLongest(src[i:]); ok {
				if s.prev != blockDictionary && !s.first {
					if err := s.emitBoundary(w); err != nil {
						return err
					}
				}
				token := dictTokenBit | byte(idx)
				w.crc = crc8Step(w.crc, token)
				if err := w.put(token); err != nil {
					return err
				}
				if w.stats != nil {
					w.stats.DictTokens++
				}
				s.prev = blockDictionary
				s.pending = nextIsDict
				s.first = false
				i += n
				continue
			}
		}

		b := src[i]
		i++

		if b == 0 {
			if s.prev != blockDictionary && !s.first {
				if err := s.emitBoundary(w); err != nil {
					return err
				}
			}
			s.pending = nextIsZero
			s.prev = blockZero
			s.first = false
			continue
		}

		if !s.first {
			switch s.prev {
			case blockZero:
				s.pending = nextIsZero
			case blockDictionary:
				s.pending = nextIsDict
			case blockBlock:
				// leave pending as-is: still mid-run
			}
		}

		w.crc = crc8Step(w.crc, b)
		if err := w.put(b); err != nil {
			return err
		}
		s.code++
		if s.code == dictJump {
			if err := s.emitJump(w); err != nil {
				return err
			}
		}
		s.prev = blockBlock
		s.first = false
	}
	return nil
}

// dictEncodeFinal emits the trailing run-length code, unless the frame
// ended immediately after a dictionary token (in which case there is no
// pending run to close).
func dictEncodeFinal(w *encoder, s *dictState) error {
	if s.prev == blockDictionary {
		return nil
	}
	return s.emitBoundary(w)
}

// dictDecode consumes src back-to-front, the dictionary-mode counterpart
// of plainDecode. A byte with the top bit set is a dictionary token,
// looked up and written word-first-byte-last (word bytes are copied in
// reverse since the destination fills backward). Otherwise the byte is a
// code: the low 5 bits are the run length (dictJump itself is the jump
// sentinel and never carries a marker), and bit nextIsZero — sampled
// whenever the byte is not a jump — records whether the run this code
// closes, together with any jump-closed runs directly before it, was
// preceded by an eliminated zero. That zero is reinserted once the
// literal bytes of the chain's first run are copied, i.e. after a run
// whose left neighbour is not a jump code.
func dictDecode(src []byte, dict *Dictionary, w *backWriter) error {
	pos := len(src) - 1
	endsInZero := false

	for pos >= 0 {
		raw := src[pos]
		pos--

		if raw&dictTokenBit != 0 {
			idx := int(raw &^ dictTokenBit)
			word, err := dict.GetWord(idx)
			if err != nil {
				return err
			}
			for i := len(word) - 1; i >= 0; i-- {
				if err := w.put(word[i]); err != nil {
					return err
				}
			}
			continue
		}

		isJump := raw&dictLenMask == dictLenMask
		if !isJump {
			endsInZero = raw&nextIsZero != 0
		}

		n := int(raw&dictLenMask) - 1
		if n < 0 {
			return ErrBadEncodedPayload
		}

		if n == 0 {
			if endsInZero && !(pos >= 0 && src[pos] == dictJump) {
				if err := w.put(0); err != nil {
					return err
				}
			}
			if pos < 0 {
				break
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

		if endsInZero && !(pos >= 0 && src[pos] == dictJump) {
			if err := w.put(0); err != nil {
				return err
			}
		}
	}

	return nil
}
