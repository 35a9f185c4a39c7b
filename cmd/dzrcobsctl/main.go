// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs

// Command dzrcobsctl encodes and decodes DZRCOBS frames over files or
// stdio, and validates dictionary blobs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mluzeiro/dzrcobs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dzrcobsctl",
		Short: "Encode, decode, and inspect DZRCOBS frames",
	}

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newValidateDictCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var (
		in, out  string
		user6    int
		dictPath string
		dictSlot int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Wrap stdin (or --in) in one DZRCOBS frame and append the delimiter",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(in)
			if err != nil {
				return errors.Wrapf(err, "dzrcobsctl encode: reading input %q", in)
			}

			opts := &dzrcobs.EncodeOptions{Encoding: dzrcobs.EncodingPlain, User6: byte(user6)}
			if dictPath != "" {
				dict, err := loadDictionary(dictPath)
				if err != nil {
					return errors.Wrapf(err, "dzrcobsctl encode: loading dictionary %q", dictPath)
				}
				switch dictSlot {
				case 1:
					opts.Encoding = dzrcobs.EncodingDict1
					opts.Dict1 = dict
				case 2:
					opts.Encoding = dzrcobs.EncodingDict2
					opts.Dict2 = dict
				default:
					return errors.Newf("dzrcobsctl encode: --dict-slot must be 1 or 2, got %d", dictSlot)
				}
			}

			frame, err := dzrcobs.EncodeFrame(src, opts)
			if err != nil {
				return errors.Wrap(err, "dzrcobsctl encode: encoding frame")
			}
			frame = append(frame, 0x00)

			return writeOutput(out, frame)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&user6, "user6", 1, "6-bit user tag (1..63)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary blob file to compress against")
	cmd.Flags().IntVar(&dictSlot, "dict-slot", 1, "dictionary slot to bind (1 or 2)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var (
		in, out   string
		dict1Path string
		dict2Path string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode one DZRCOBS frame read from stdin (or --in) up to its delimiter",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return errors.Wrapf(err, "dzrcobsctl decode: reading input %q", in)
			}
			raw = trimDelimiter(raw)

			opts := &dzrcobs.DecodeOptions{}
			if dict1Path != "" {
				if opts.Dict1, err = loadDictionary(dict1Path); err != nil {
					return errors.Wrapf(err, "dzrcobsctl decode: loading dictionary %q", dict1Path)
				}
			}
			if dict2Path != "" {
				if opts.Dict2, err = loadDictionary(dict2Path); err != nil {
					return errors.Wrapf(err, "dzrcobsctl decode: loading dictionary %q", dict2Path)
				}
			}

			payload, user6, err := dzrcobs.DecodeFrame(raw, opts)
			if err != nil {
				return errors.Wrap(err, "dzrcobsctl decode: decoding frame")
			}
			fmt.Fprintf(os.Stderr, "user6=%d\n", user6)

			return writeOutput(out, payload)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&dict1Path, "dict1", "", "dictionary blob bound to slot 1")
	cmd.Flags().StringVar(&dict2Path, "dict2", "", "dictionary blob bound to slot 2")
	return cmd
}

func newValidateDictCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "validate-dict",
		Short: "Validate a dictionary blob and print its entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readInput(in)
			if err != nil {
				return errors.Wrapf(err, "dzrcobsctl validate-dict: reading input %q", in)
			}

			dict, err := dzrcobs.NewDictionary(blob)
			if err != nil {
				return errors.Wrap(err, "dzrcobsctl validate-dict: invalid dictionary")
			}

			for _, e := range dict.Entries() {
				fmt.Printf("%3d  %q\n", e.GlobalIndex, e.Word)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "dictionary blob file (default: stdin)")
	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadDictionary(path string) (*dzrcobs.Dictionary, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dzrcobs.NewDictionary(blob)
}

func trimDelimiter(raw []byte) []byte {
	if n := len(raw); n > 0 && raw[n-1] == 0x00 {
		return raw[:n-1]
	}
	return raw
}
