// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// src/dzrcobs_dictionary.c)

package dzrcobs

import "bytes"

// stratum holds the entries of one word size within a dictionary blob.
// stride is wordSize+1 (the leading length-digit byte plus the payload).
// globalIndex is the 1-based index of the stratum's first entry across the
// whole dictionary.
type stratum struct {
	base        int
	stride      int
	count       int
	globalIndex int
}

// Dictionary is a validated, immutable static word table used by the
// dictionary-mode codec engine. Build one with NewDictionary; a *Dictionary
// is safe for concurrent read-only use by any number of encoder/decoder
// contexts once built.
type Dictionary struct {
	blob        []byte
	strata      [maxDictStrata]stratum
	minWordSize int
	maxWordSize int
}

// NewDictionary validates blob against the invariants of the dictionary
// wire format and builds the stratum table used for lookup. The returned
// Dictionary retains blob; callers must not mutate it afterwards.
func NewDictionary(blob []byte) (*Dictionary, error) {
	if err := ValidateDictionary(blob); err != nil {
		return nil, err
	}

	d := &Dictionary{blob: blob, minWordSize: maxWordLen, maxWordSize: 0}

	end := len(blob) - 1 // exclude the terminating 0x00
	pos := 0
	globalIndex := 1
	si := -1

	for pos < end {
		wordLen := int(blob[pos] - '0')
		stride := wordLen + 1

		if si < 0 || d.strata[si].stride != stride {
			si++
			d.strata[si] = stratum{base: pos, stride: stride, globalIndex: globalIndex}
			if wordLen < d.minWordSize {
				d.minWordSize = wordLen
			}
			if wordLen > d.maxWordSize {
				d.maxWordSize = wordLen
			}
		}

		d.strata[si].count++
		pos += stride
		globalIndex++
	}

	return d, nil
}

// ValidateDictionary walks blob enforcing the six invariants of the packed
// dictionary format and returns the distinct error for the first violation
// found, or nil if blob is well-formed.
func ValidateDictionary(blob []byte) error {
	if len(blob) < 3 {
		return ErrBadArg
	}

	var prevWord []byte
	var prevLen int
	wordCount := 0
	strataSeen := 0
	pos := 0

	for pos < len(blob) {
		sizeDigit := blob[pos]
		if sizeDigit < dictLenDigitLow || sizeDigit > dictLenDigitHi {
			return ErrDictBadWordSize
		}
		wordLen := int(sizeDigit - '0')
		pos++

		if pos+wordLen > len(blob) {
			return ErrDictOutOfBounds
		}
		word := blob[pos : pos+wordLen]
		pos += wordLen

		wordCount++
		if wordCount > maxDictEntries {
			return ErrDictWordCountExceeded
		}

		if prevWord != nil && prevLen == wordLen {
			if bytes.Compare(prevWord, word) >= 0 {
				return ErrDictNotSorted
			}
		} else {
			strataSeen++
			if strataSeen > maxDictStrata {
				return ErrDictTooManyStrata
			}
		}
		prevWord, prevLen = word, wordLen

		if pos >= len(blob) {
			return ErrDictOutOfBounds
		}
		if blob[pos] == 0 {
			break
		}
	}

	if pos >= len(blob) || blob[pos] != 0 {
		return ErrDictOutOfBounds
	}
	if wordCount == 0 {
		return ErrDictWordCountExceeded
	}
	if pos+1 < len(blob) {
		return ErrDictEarlierEnd
	}

	return nil
}

// GetWord returns the payload bytes of the dictionary entry at zero-based
// global index idx (0..125). It returns ErrWordNotFoundOnDictionary if no
// stratum covers that index.
func (d *Dictionary) GetWord(idx int) ([]byte, error) {
	if idx < 0 || idx >= maxDictEntries {
		return nil, ErrWordNotFoundOnDictionary
	}
	target := idx + 1 // 1-based

	for i := range d.strata {
		s := &d.strata[i]
		if s.count == 0 {
			continue
		}
		if s.globalIndex+s.count-1 >= target {
			offset := s.base + (target-s.globalIndex)*s.stride + 1
			wordLen := s.stride - 1
			return d.blob[offset : offset+wordLen], nil
		}
	}

	return nil, ErrWordNotFoundOnDictionary
}

// SearchLongest looks for a dictionary word that is a prefix of key,
// trying strata from the shortest word size to the longest and returning
// the first hit, so the shortest matching word wins (spec Open Question
// O2: this matches the original's ascending scan order and only affects
// compression ratio, not correctness). It returns the zero-based global index, the matched
// length, and true on success.
func (d *Dictionary) SearchLongest(key []byte) (idx int, matchLen int, ok bool) {
	if len(key) < d.minWordSize {
		return 0, 0, false
	}
	probeLen := len(key)
	if probeLen > d.maxWordSize {
		probeLen = d.maxWordSize
	}

	for i := range d.strata {
		s := &d.strata[i]
		wordLen := s.stride - 1
		if s.count == 0 || wordLen > probeLen {
			continue
		}
		if g, found := searchStratum(d.blob, s, key[:wordLen]); found {
			return g - 1, wordLen, true
		}
	}

	return 0, 0, false
}

// searchStratum binary-searches one stratum's sorted words for an exact
// match of key (whose length must equal the stratum's word size) and
// returns the matching entry's 1-based global index.
func searchStratum(blob []byte, s *stratum, key []byte) (int, bool) {
	wordLen := s.stride - 1
	lo, hi := 0, s.count-1

	for lo <= hi {
		mid := (lo + hi) / 2
		entryOffset := s.base + 1 + mid*s.stride
		entry := blob[entryOffset : entryOffset+wordLen]

		switch bytes.Compare(key, entry) {
		case 0:
			return s.globalIndex + mid, true
		case 1:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return 0, false
}

// DictEntry is a single word exposed by Dictionary.Entries for
// introspection and debugging; it has no effect on encode/decode.
type DictEntry struct {
	GlobalIndex int // 1-based
	Word        []byte
}

// Entries returns every word in the dictionary in global-index order. It
// allocates; callers on a hot path should use GetWord/SearchLongest
// instead.
func (d *Dictionary) Entries() []DictEntry {
	var out []DictEntry
	for i := range d.strata {
		s := &d.strata[i]
		for j := 0; j < s.count; j++ {
			offset := s.base + 1 + j*s.stride
			out = append(out, DictEntry{
				GlobalIndex: s.globalIndex + j,
				Word:        d.blob[offset : offset+s.stride-1],
			})
		}
	}
	return out
}
