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

// Shift rotates each pure-insertion or pure-deletion diff across adjacent equal runs to the
// boundary that maximizes the combined boundary score, the same idea as Michael Haggerty's
// indentation heuristic (https://github.com/mhagger/diff-slider-tools): a diff whose content
// tiles into its own surroundings can be relabeled at any of several equivalent positions, so pick
// the one a human would have chosen.
//
// Diffs where both sides are non-empty (a substitution) are left untouched: the formal shift rule
// only applies to pure insertions and pure deletions.
func Shift(diffs []model.SequenceDiff, seq1, seq2 Seq) []model.SequenceDiff {
	out := make([]model.SequenceDiff, len(diffs))
	copy(out, diffs)

	for i := range out {
		d := out[i]

		lo1, hi1 := 0, seq1.Length()
		if i > 0 {
			lo1 = out[i-1].Seq1.EndExclusive
		}
		if i+1 < len(out) {
			hi1 = out[i+1].Seq1.Start
		}
		lo2, hi2 := 0, seq2.Length()
		if i > 0 {
			lo2 = out[i-1].Seq2.EndExclusive
		}
		if i+1 < len(out) {
			hi2 = out[i+1].Seq2.Start
		}

		switch {
		case d.Seq1.IsEmpty() && !d.Seq2.IsEmpty():
			k := bestShift(seq2, d.Seq2.Start, d.Seq2.EndExclusive, lo2, hi2, func(k int) int32 {
				p := d.Seq1.Start + k
				s, e := d.Seq2.Start+k, d.Seq2.EndExclusive+k
				return seq1.GetBoundaryScore(p) + seq2.GetBoundaryScore(s) + seq2.GetBoundaryScore(e)
			})
			if k != 0 && lo1 <= d.Seq1.Start+k && d.Seq1.Start+k <= hi1 {
				out[i] = model.SequenceDiff{
					Seq1: model.OffsetRange{Start: d.Seq1.Start + k, EndExclusive: d.Seq1.Start + k},
					Seq2: model.OffsetRange{Start: d.Seq2.Start + k, EndExclusive: d.Seq2.EndExclusive + k},
				}
			}
		case d.Seq2.IsEmpty() && !d.Seq1.IsEmpty():
			k := bestShift(seq1, d.Seq1.Start, d.Seq1.EndExclusive, lo1, hi1, func(k int) int32 {
				t := d.Seq2.Start + k
				p, e := d.Seq1.Start+k, d.Seq1.EndExclusive+k
				return seq1.GetBoundaryScore(p) + seq1.GetBoundaryScore(e) + seq2.GetBoundaryScore(t)
			})
			if k != 0 && lo2 <= d.Seq2.Start+k && d.Seq2.Start+k <= hi2 {
				out[i] = model.SequenceDiff{
					Seq1: model.OffsetRange{Start: d.Seq1.Start + k, EndExclusive: d.Seq1.EndExclusive + k},
					Seq2: model.OffsetRange{Start: d.Seq2.Start + k, EndExclusive: d.Seq2.Start + k},
				}
			}
		}
	}
	return out
}

// bestShift finds the k in the valid sliding range of [start, end) (bounded by [lo, hi) and by
// seq's own repeated-content constraint) that maximizes score(k), tie-broken by smallest |k| and
// then by k >= 0, matching the reference tie-break rule.
func bestShift(seq Seq, start, end, lo, hi int, score func(k int) int32) int {
	kMin, kMax := 0, 0
	for start-kMin-1 >= lo && seq.IsStronglyEqual(start-kMin-1, end-kMin-1) {
		kMin++
	}
	for end+kMax < hi && seq.IsStronglyEqual(start+kMax, end+kMax) {
		kMax++
	}

	// Walk candidates in order of increasing |k|, preferring k >= 0 on ties, so that the first
	// strictly-better score encountered already respects the tie-break rule.
	bestK := 0
	bestScore := score(0)
	for m := 1; m <= kMax || m <= kMin; m++ {
		if m <= kMax {
			if s := score(m); s > bestScore {
				bestScore, bestK = s, m
			}
		}
		if m <= kMin {
			if s := score(-m); s > bestScore {
				bestScore, bestK = s, -m
			}
		}
	}
	return bestK
}
