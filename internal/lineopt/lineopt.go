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

// Package lineopt turns a raw Myers edit script into the boundary placement a human would choose.
// It is shared between the line-level diff computer and the character-level refiner: both feed
// their own sequence (of lines or of characters) through the same shift-then-join pipeline.
package lineopt

import "znkr.io/vscdiff/internal/model"

// Seq is the capability the optimizer needs from a sequence: position-local strong equality (to
// know whether a boundary can be slid across a repeated element) and a boundary score (to know
// which of several equally valid placements reads best). Both LineSequence and
// LinesSliceCharSequence in package sequence satisfy this structurally.
type Seq interface {
	Length() int
	IsStronglyEqual(i, j int) bool
	GetBoundaryScore(i int) int32
}

// JoinThreshold bundles the two thresholds used by JoinAdjacent: gaps of up to Short equal
// elements are always joined, and gaps up to BetweenLong equal elements are joined when both
// flanking diffs are at least LongDiff elements long on some side.
type JoinThreshold struct {
	Short       int // Always join gaps up to this many equal elements (3 for lines).
	BetweenLong int // Join gaps up to this many equal elements when both diffs are "long" (5 for characters).
	LongDiff    int // A diff is "long" if either of its sides has at least this many elements (25 for characters).
}

// Optimize runs the shift and join passes, in that order, matching the pipeline order mandated by
// the character-level refinement spec (order is load-bearing: shifting first can create joinable
// gaps that didn't exist in the raw edit script).
func Optimize(diffs []model.SequenceDiff, seq1, seq2 Seq, equal func(i, j int) bool, threshold JoinThreshold) []model.SequenceDiff {
	diffs = Shift(diffs, seq1, seq2)
	diffs = JoinAdjacent(diffs, equal, threshold)
	return diffs
}
