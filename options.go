// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

package dzrcobs

// EncodeOptions configures a single-shot EncodeFrame call: which engine to
// run and which 6-bit tag to stamp on the frame. Dict1/Dict2 bind the
// dictionaries used when Encoding selects EncodingDict1/EncodingDict2;
// leave them nil for plain frames.
type EncodeOptions struct {
	// Encoding selects the engine: EncodingPlain, EncodingDict1, or
	// EncodingDict2.
	Encoding Encoding
	// User6 is the caller's 6-bit tag, required in 1..63.
	User6 byte
	// Dict1, Dict2 bind the dictionaries for EncodingDict1/EncodingDict2.
	Dict1 *Dictionary
	Dict2 *Dictionary
}

// DefaultEncodeOptions returns options for a plain frame with user tag 1.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{Encoding: EncodingPlain, User6: 1}
}

// DecodeOptions configures a single-shot DecodeFrame call: the
// dictionaries the receiver has available. Either may be nil.
type DecodeOptions struct {
	Dict1 *Dictionary
	Dict2 *Dictionary
}

// DefaultDecodeOptions returns options with no dictionaries bound,
// suitable for decoding plain-only traffic.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

// EncodeFrame builds one complete DZRCOBS frame from src in a single
// call, allocating its own destination buffer. It does not append the
// transport's trailing 0x00 delimiter.
func EncodeFrame(src []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	dst := make([]byte, MaxEncodedForEncoding(opts.Encoding, len(src))+frameHeaderSize)

	enc := NewEncoder()
	if opts.Dict1 != nil {
		if err := enc.SetDictionary(Dict1, opts.Dict1); err != nil {
			return nil, err
		}
	}
	if opts.Dict2 != nil {
		if err := enc.SetDictionary(Dict2, opts.Dict2); err != nil {
			return nil, err
		}
	}

	if err := enc.Begin(opts.Encoding, dst, opts.User6); err != nil {
		return nil, err
	}
	if err := enc.Feed(src); err != nil {
		return nil, err
	}
	n, err := enc.End()
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecodeFrame decodes one complete DZRCOBS frame from src (excluding the
// transport's trailing 0x00 delimiter) in a single call, allocating its
// own destination buffer. It returns the decoded payload and the
// frame's user6 tag.
func DecodeFrame(src []byte, opts *DecodeOptions) ([]byte, byte, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	// A dictionary token expands to at most maxWordLen bytes; every other
	// encoded byte yields at most one.
	size := len(src)
	if opts.Dict1 != nil || opts.Dict2 != nil {
		size *= maxWordLen
	}
	dst := make([]byte, size)
	decoded, user6, err := Decode(src, dst, opts.Dict1, opts.Dict2)
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, len(decoded))
	copy(out, decoded)
	return out, user6, nil
}
