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

import (
	"testing"

	"github.com/stretchr/testify/require"
	"znkr.io/vscdiff/internal/model"
)

// testSeq is a minimal Seq. preferred, if set, names the single boundary position scored above
// all others; every other position scores 0.
type testSeq struct {
	lines     []string
	preferred int
	hasPref   bool
}

func seqOf(lines ...string) testSeq { return testSeq{lines: lines} }

func (s testSeq) withPreferredBoundary(i int) testSeq {
	s.preferred, s.hasPref = i, true
	return s
}

func (s testSeq) Length() int { return len(s.lines) }
func (s testSeq) IsStronglyEqual(i, j int) bool {
	return s.lines[i] == s.lines[j]
}
func (s testSeq) GetBoundaryScore(i int) int32 {
	if s.hasPref && i == s.preferred {
		return 10
	}
	return 0
}

func diffAt(s1a, s1b, s2a, s2b int) model.SequenceDiff {
	return model.SequenceDiff{
		Seq1: model.OffsetRange{Start: s1a, EndExclusive: s1b},
		Seq2: model.OffsetRange{Start: s2a, EndExclusive: s2b},
	}
}

func TestShift_insertionSlidesToPreferredBoundary(t *testing.T) {
	// seq1: ["foo", "bar"]; seq2: ["foo", "bar", "bar"] — the second "bar" is a duplicate of the
	// first, so the insertion boundary is ambiguous: either "bar" can be the inserted one. The
	// boundary right after "foo" is scored higher, so the optimizer should prefer it.
	seq1 := seqOf("foo", "bar")
	seq2 := seqOf("foo", "bar", "bar").withPreferredBoundary(1)
	diffs := []model.SequenceDiff{diffAt(2, 2, 2, 3)}

	got := Shift(diffs, seq1, seq2)
	require.Equal(t, []model.SequenceDiff{diffAt(1, 1, 1, 2)}, got)
}

func TestShift_leavesSubstitutionsUntouched(t *testing.T) {
	seq1 := seqOf("a", "b", "c")
	seq2 := seqOf("a", "x", "c")
	diffs := []model.SequenceDiff{diffAt(1, 2, 1, 2)}

	got := Shift(diffs, seq1, seq2)
	require.Equal(t, diffs, got)
}

func TestJoinAdjacent_shortGapAlwaysJoined(t *testing.T) {
	seq1 := seqOf("a", "b", "c", "d", "e")
	seq2 := seqOf("x", "b", "c", "d", "y")
	diffs := []model.SequenceDiff{
		diffAt(0, 1, 0, 1),
		diffAt(4, 5, 4, 5),
	}
	equal := func(i, j int) bool { return seq1.lines[i] == seq2.lines[j] }

	got := JoinAdjacent(diffs, equal, JoinThreshold{Short: 3, BetweenLong: 5, LongDiff: 25})
	require.Equal(t, []model.SequenceDiff{diffAt(0, 5, 0, 5)}, got)
}

func TestJoinAdjacent_longGapNotJoinedWhenDiffsShort(t *testing.T) {
	lines1 := make([]string, 40)
	lines2 := make([]string, 40)
	for i := range lines1 {
		lines1[i] = "m"
		lines2[i] = "m"
	}
	lines1[0], lines2[0] = "a", "x"
	lines1[39], lines2[39] = "b", "y"
	diffs := []model.SequenceDiff{
		diffAt(0, 1, 0, 1),
		diffAt(39, 40, 39, 40),
	}
	equal := func(i, j int) bool { return lines1[i] == lines2[j] }

	got := JoinAdjacent(diffs, equal, JoinThreshold{Short: 3, BetweenLong: 5, LongDiff: 25})
	require.Equal(t, diffs, got)
}

func TestJoinAdjacent_empty(t *testing.T) {
	got := JoinAdjacent(nil, func(i, j int) bool { return true }, JoinThreshold{Short: 3})
	require.Nil(t, got)
}
