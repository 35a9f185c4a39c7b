// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

package dzrcobs

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("dzrcobs benchmark text payload "), 128),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"zero-heavy-256k": bytes.Repeat([]byte{0, 0, 1, 0, 0, 2, 0, 0, 3, 0}, 26214),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkEncodeFrame(b *testing.B) {
	encodings := []struct {
		name string
		opts *EncodeOptions
	}{
		{"plain", &EncodeOptions{Encoding: EncodingPlain, User6: 1}},
		{"dict", &EncodeOptions{Encoding: EncodingDict1, User6: 1, Dict1: DefaultDictionaryContext}},
	}

	for inputName, inputData := range benchmarkInputSets() {
		for _, enc := range encodings {
			name := fmt.Sprintf("%s/%s", inputName, enc.name)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := EncodeFrame(inputData, enc.opts); err != nil {
						b.Fatalf("EncodeFrame failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecodeFrame(b *testing.B) {
	encodings := []struct {
		name string
		opts *EncodeOptions
	}{
		{"plain", &EncodeOptions{Encoding: EncodingPlain, User6: 1}},
		{"dict", &EncodeOptions{Encoding: EncodingDict1, User6: 1, Dict1: DefaultDictionaryContext}},
	}

	for inputName, inputData := range benchmarkInputSets() {
		for _, enc := range encodings {
			frame, err := EncodeFrame(inputData, enc.opts)
			if err != nil {
				b.Fatalf("setup EncodeFrame failed for %s/%s: %v", inputName, enc.name, err)
			}
			decodeOpts := &DecodeOptions{Dict1: DefaultDictionaryContext}

			name := fmt.Sprintf("%s/%s", inputName, enc.name)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, _, err := DecodeFrame(frame, decodeOpts); err != nil {
						b.Fatalf("DecodeFrame failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	opts := &EncodeOptions{Encoding: EncodingPlain, User6: 9}
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		frame, err := EncodeFrame(inputData, opts)
		if err != nil {
			b.Fatalf("EncodeFrame failed: %v", err)
		}
		if _, _, err := DecodeFrame(frame, nil); err != nil {
			b.Fatalf("DecodeFrame failed: %v", err)
		}
	}
}
