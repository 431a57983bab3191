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

// Package linediff implements the top-level line diff pipeline: build line sequences, run the
// Myers engine over them, optimize the resulting boundaries, then refine each line diff down to
// character-level inner changes.
package linediff

import (
	"math"

	"znkr.io/vscdiff/internal/charrefine"
	"znkr.io/vscdiff/internal/clock"
	"znkr.io/vscdiff/internal/config"
	"znkr.io/vscdiff/internal/lineopt"
	"znkr.io/vscdiff/internal/model"
	"znkr.io/vscdiff/internal/myers"
	"znkr.io/vscdiff/internal/sequence"
)

// joinThreshold bounds how large a run of matching lines between two line diffs may be while still
// getting merged into one. Lines have no "long diff" exemption the way characters do (a line diff
// one line long is already significant), so BetweenLong is unreachable: LongDiff is set above any
// real diff length.
var joinThreshold = lineopt.JoinThreshold{
	Short:       3,
	BetweenLong: 3,
	LongDiff:    math.MaxInt,
}

// Compute runs the full line diff pipeline over original and modified and returns the assembled
// result.
func Compute(original, modified []string, cfg config.Config) model.LinesDiff {
	deadline := clock.New(cfg.MaxComputationTimeMs)

	seq1 := sequence.NewLineSequence(original, 1, cfg.IgnoreTrimWhitespace)
	seq2 := sequence.NewLineSequence(modified, 1, cfg.IgnoreTrimWhitespace)

	lineDiffs, hitTimeout := myers.Compute(seq1, seq2, deadline)
	if hitTimeout {
		return model.LinesDiff{
			Changes:    []model.DetailedLineRangeMapping{trivialMapping(original, modified)},
			HitTimeout: true,
		}
	}
	if len(lineDiffs) == 0 {
		return model.LinesDiff{}
	}

	equal := func(i, j int) bool { return seq1.Line(i) == seq2.Line(j) }
	lineDiffs = lineopt.Optimize(lineDiffs, seq1, seq2, equal, joinThreshold)

	changes := make([]model.DetailedLineRangeMapping, 0, len(lineDiffs))
	for _, d := range lineDiffs {
		origLines := original[d.Seq1.Start:d.Seq1.EndExclusive]
		modLines := modified[d.Seq2.Start:d.Seq2.EndExclusive]

		inner, hit := charrefine.Refine(origLines, modLines, d.Seq1.Start+1, d.Seq2.Start+1, deadline, cfg.ExtendToSubwords)
		hitTimeout = hitTimeout || hit

		changes = append(changes, model.DetailedLineRangeMapping{
			Original:     model.LineRange{StartLineNumber: d.Seq1.Start + 1, EndLineNumberExclusive: d.Seq1.EndExclusive + 1},
			Modified:     model.LineRange{StartLineNumber: d.Seq2.Start + 1, EndLineNumberExclusive: d.Seq2.EndExclusive + 1},
			InnerChanges: inner,
		})
	}

	return model.LinesDiff{Changes: changes, HitTimeout: hitTimeout}
}

// trivialMapping builds the single mapping covering both files in full, used when the line-level
// Myers pass itself times out: there is no time budget left to refine anything further, so the
// result is one inner change spanning each file's full extent.
func trivialMapping(original, modified []string) model.DetailedLineRangeMapping {
	n, m := len(original), len(modified)
	return model.DetailedLineRangeMapping{
		Original: model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: n + 1},
		Modified: model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: m + 1},
		InnerChanges: []model.RangeMapping{{
			Original: model.CharacterRange{Start: model.Position{LineNumber: 1, Column: 1}, End: endPosition(original)},
			Modified: model.CharacterRange{Start: model.Position{LineNumber: 1, Column: 1}, End: endPosition(modified)},
		}},
	}
}

func endPosition(lines []string) model.Position {
	if len(lines) == 0 {
		return model.Position{LineNumber: 1, Column: 1}
	}
	return model.Position{LineNumber: len(lines), Column: len(lines[len(lines)-1]) + 1}
}
