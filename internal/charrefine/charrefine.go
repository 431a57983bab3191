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

// Package charrefine implements character-level refinement of a single line diff: it diffs the
// flattened character content of the affected lines, then runs the same boundary-placement passes
// as the line-level optimizer plus two character-specific extension steps, and finally translates
// the result to (line, column) inner changes.
//
// The pipeline order is load-bearing (reordering it changes output on real inputs): diff, shift,
// extend to whole word, extend to whole subword, join short/long-diff gaps, translate.
package charrefine

import (
	"znkr.io/vscdiff/internal/clock"
	"znkr.io/vscdiff/internal/lineopt"
	"znkr.io/vscdiff/internal/model"
	"znkr.io/vscdiff/internal/myers"
	"znkr.io/vscdiff/internal/sequence"
)

// Reference thresholds for the join pass (§4.4 steps 6-7), folded into a single JoinAdjacent call
// since both operate on the same gap-length/equal-content test and their relative order does not
// matter (they differ only in which gaps qualify).
const (
	shortMatchThreshold = 3  // step 6: always merge gaps of at most this many equal characters.
	longDiffMinLength   = 25 // step 7: a diff counts as "long" at this many characters or more.
	betweenLongMaxGap   = 5  // step 7: merge gaps of at most this many equal chars between two long diffs.
)

// Refine computes the character-level inner changes for a single line diff. origLines and
// modLines are the lines covered by that line diff (not the whole file); origStartLine and
// modStartLine are their 1-based line numbers in the caller's numbering.
func Refine(origLines, modLines []string, origStartLine, modStartLine int, deadline clock.Deadline, extendToSubwords bool) (inner []model.RangeMapping, hitTimeout bool) {
	cs1 := sequence.NewLinesSliceCharSequence(origLines, origStartLine)
	cs2 := sequence.NewLinesSliceCharSequence(modLines, modStartLine)

	diffs, hitTimeout := myers.Compute(cs1, cs2, deadline)
	if len(diffs) == 0 {
		return nil, hitTimeout
	}

	if !hitTimeout {
		// Shift and JoinAdjacent are called directly rather than through lineopt.Optimize: the two
		// extension steps below must run between them.
		diffs = lineopt.Shift(diffs, cs1, cs2)
		diffs = extendToWholeWord(diffs, cs1, cs2)
		if extendToSubwords {
			diffs = extendToWholeSubword(diffs, cs1, cs2)
		}
		equal := func(i, j int) bool { return cs1.Byte(i) == cs2.Byte(j) }
		diffs = lineopt.JoinAdjacent(diffs, equal, lineopt.JoinThreshold{
			Short:       shortMatchThreshold,
			BetweenLong: betweenLongMaxGap,
			LongDiff:    longDiffMinLength,
		})
	}

	inner = make([]model.RangeMapping, 0, len(diffs))
	for _, d := range diffs {
		inner = append(inner, model.RangeMapping{
			Original: model.CharacterRange{Start: cs1.PositionAt(d.Seq1.Start), End: cs1.PositionAt(d.Seq1.EndExclusive)},
			Modified: model.CharacterRange{Start: cs2.PositionAt(d.Seq2.Start), End: cs2.PositionAt(d.Seq2.EndExclusive)},
		})
	}
	return inner, hitTimeout
}
