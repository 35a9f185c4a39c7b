// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/mluzeiro/dzrcobs (distilled from KammutierSpule/dzrcobs,
// debug counters of src/dzrcobs.c: writeCounter/totalRead/totalWrite)

package dzrcobs

// Stats holds optional, read-only instrumentation an Encoder reports
// after End. It has no effect on wire output or on decoding; it exists
// purely so a caller can watch how much a dictionary is actually paying
// for itself, the same role the source's debug-only writeCounter/
// totalRead/totalWrite fields played.
type Stats struct {
	BytesIn         int
	BytesOut        int
	DictTokens      int
	LiteralRuns     int
	ZerosEliminated int
}
