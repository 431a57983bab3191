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

package lineopt

import "znkr.io/vscdiff/internal/model"

// JoinAdjacent merges consecutive diffs separated by a short run of equal elements into one diff
// spanning the gap, so that rendering shows one highlighted region instead of two regions split by
// a tiny unchanged sliver.
//
// equal(i, j) must report whether element i of seq1 and element j of seq2 are the reference's
// notion of "strongly equal"; since the gap between two diffs is, by construction, a run the
// diffing engine already matched, this is almost always true and exists to guard against
// hash-equal-but-not-content-equal gaps (e.g. whitespace folded together by ignoreTrimWhitespace).
//
// Two thresholds apply, checked in order: a gap of at most threshold.Short equal elements is
// always joined; otherwise, a gap of at most threshold.BetweenLong equal elements is joined when
// both flanking diffs are "long" (at least threshold.LongDiff elements on some side). The two
// conditions are alternatives, so the order in which they are checked does not change the result.
// The order between this pass and Shift is load bearing: reordering changes the output on real
// inputs.
func JoinAdjacent(diffs []model.SequenceDiff, equal func(i, j int) bool, threshold JoinThreshold) []model.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}

	out := make([]model.SequenceDiff, 0, len(diffs))
	cur := diffs[0]
	for _, next := range diffs[1:] {
		gap1 := next.Seq1.Start - cur.Seq1.EndExclusive
		gap2 := next.Seq2.Start - cur.Seq2.EndExclusive
		if gap1 == gap2 && gap1 >= 0 && gapIsEqual(cur.Seq1.EndExclusive, cur.Seq2.EndExclusive, gap1, equal) &&
			shouldJoin(gap1, cur, next, threshold) {
			cur = model.SequenceDiff{
				Seq1: model.OffsetRange{Start: cur.Seq1.Start, EndExclusive: next.Seq1.EndExclusive},
				Seq2: model.OffsetRange{Start: cur.Seq2.Start, EndExclusive: next.Seq2.EndExclusive},
			}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

func gapIsEqual(s0, t0, n int, equal func(i, j int) bool) bool {
	for k := 0; k < n; k++ {
		if !equal(s0+k, t0+k) {
			return false
		}
	}
	return true
}

func isLong(d model.SequenceDiff, longDiff int) bool {
	return d.Seq1.Length() >= longDiff || d.Seq2.Length() >= longDiff
}

func shouldJoin(gap int, cur, next model.SequenceDiff, threshold JoinThreshold) bool {
	if gap <= threshold.Short {
		return true
	}
	return gap <= threshold.BetweenLong && isLong(cur, threshold.LongDiff) && isLong(next, threshold.LongDiff)
}
