// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

package dzrcobs

import (
	"bufio"
	"io"
)

// FrameReader scans an io.Reader for DZRCOBS frames delimited by 0x00
// bytes, decoding each one in turn. It has no decoding logic of its own
// beyond delimiter scanning; DecodeFrame does the real work.
type FrameReader struct {
	r    *bufio.Reader
	opts *DecodeOptions
}

// NewFrameReader wraps r. opts may be nil (no dictionaries bound).
func NewFrameReader(r io.Reader, opts *DecodeOptions) *FrameReader {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}
	return &FrameReader{r: bufio.NewReader(r), opts: opts}
}

// ReadFrame reads up to and including the next 0x00 delimiter and decodes
// the bytes before it as one frame. It returns io.EOF once the
// underlying reader is exhausted with no partial frame pending.
func (fr *FrameReader) ReadFrame() (payload []byte, user6 byte, err error) {
	raw, err := fr.r.ReadBytes(0x00)
	if err != nil {
		if err == io.EOF && len(raw) == 0 {
			return nil, 0, io.EOF
		}
		if err != io.EOF {
			return nil, 0, err
		}
		// A final frame with no trailing delimiter is still decodable.
	} else {
		raw = raw[:len(raw)-1] // drop the delimiter itself
	}

	return DecodeFrame(raw, fr.opts)
}
