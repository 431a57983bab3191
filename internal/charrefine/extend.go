// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charrefine

import (
	"znkr.io/vscdiff/internal/model"
	"znkr.io/vscdiff/internal/sequence"
)

// wordExtendCap bounds how many characters a single extend-to-word/subword step may add to one
// side of one diff; the reference value is 100.
const wordExtendCap = 100

type wordSeq interface {
	Length() int
	IsWordCharAt(i int) bool
}

// extendToWholeWord grows a diff's boundaries outward while they fall strictly inside a
// word-character run, so that a diff never starts or ends in the middle of an identifier.
func extendToWholeWord(diffs []model.SequenceDiff, seq1, seq2 wordSeq) []model.SequenceDiff {
	out := make([]model.SequenceDiff, len(diffs))
	copy(out, diffs)
	for i := range out {
		lo1, hi1 := neighborBounds1(out, i, seq1.Length())
		lo2, hi2 := neighborBounds2(out, i, seq2.Length())

		s1, e1 := extendWhile(out[i].Seq1.Start, out[i].Seq1.EndExclusive, lo1, hi1, wordExtendCap,
			func(i int) bool { return seq1.IsWordCharAt(i) })
		s2, e2 := extendWhile(out[i].Seq2.Start, out[i].Seq2.EndExclusive, lo2, hi2, wordExtendCap,
			func(i int) bool { return seq2.IsWordCharAt(i) })
		out[i] = model.SequenceDiff{
			Seq1: model.OffsetRange{Start: s1, EndExclusive: e1},
			Seq2: model.OffsetRange{Start: s2, EndExclusive: e2},
		}
	}
	return out
}

type subwordSeq interface {
	Length() int
	Bytes() []byte
}

// extendToWholeSubword grows a diff's boundaries outward while they fall strictly inside a
// subword (CamelCase / snake_case / kebab-case component), for callers that opted into
// ExtendToSubwords.
func extendToWholeSubword(diffs []model.SequenceDiff, seq1, seq2 subwordSeq) []model.SequenceDiff {
	out := make([]model.SequenceDiff, len(diffs))
	copy(out, diffs)
	buf1, buf2 := seq1.Bytes(), seq2.Bytes()
	for i := range out {
		lo1, hi1 := neighborBounds1(out, i, seq1.Length())
		lo2, hi2 := neighborBounds2(out, i, seq2.Length())

		s1, e1 := extendWhile(out[i].Seq1.Start, out[i].Seq1.EndExclusive, lo1, hi1, wordExtendCap,
			func(i int) bool { return !sequence.IsSubwordBoundary(buf1, i) })
		s2, e2 := extendWhile(out[i].Seq2.Start, out[i].Seq2.EndExclusive, lo2, hi2, wordExtendCap,
			func(i int) bool { return !sequence.IsSubwordBoundary(buf2, i) })
		out[i] = model.SequenceDiff{
			Seq1: model.OffsetRange{Start: s1, EndExclusive: e1},
			Seq2: model.OffsetRange{Start: s2, EndExclusive: e2},
		}
	}
	return out
}

// extendWhile grows [start, end) outward while the character about to be absorbed satisfies
// interior, bounded by [lo, hi) and by cap on how much the range's total length may grow.
func extendWhile(start, end, lo, hi, cap int, interior func(i int) bool) (int, int) {
	origLen := end - start
	for start > lo && interior(start-1) && (end-(start-1)) <= origLen+cap {
		start--
	}
	for end < hi && interior(end) && ((end+1)-start) <= origLen+cap {
		end++
	}
	return start, end
}

func neighborBounds1(diffs []model.SequenceDiff, i, length int) (lo, hi int) {
	lo, hi = 0, length
	if i > 0 {
		lo = diffs[i-1].Seq1.EndExclusive
	}
	if i+1 < len(diffs) {
		hi = diffs[i+1].Seq1.Start
	}
	return
}

func neighborBounds2(diffs []model.SequenceDiff, i, length int) (lo, hi int) {
	lo, hi = 0, length
	if i > 0 {
		lo = diffs[i-1].Seq2.EndExclusive
	}
	if i+1 < len(diffs) {
		hi = diffs[i+1].Seq2.Start
	}
	return
}
