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

package linediff

import (
	"testing"

	"github.com/stretchr/testify/require"
	"znkr.io/vscdiff/internal/config"
	"znkr.io/vscdiff/internal/model"
)

func TestCompute_identity(t *testing.T) {
	lines := []string{"line 1", "line 2"}
	got := Compute(lines, lines, config.Config{})
	require.Empty(t, got.Changes)
	require.False(t, got.HitTimeout)
}

func TestCompute_singleLineReplacement(t *testing.T) {
	original := []string{"line 1", "line 2"}
	modified := []string{"line 1", "line 3"}

	got := Compute(original, modified, config.Config{})
	require.False(t, got.HitTimeout)
	require.Len(t, got.Changes, 1)

	c := got.Changes[0]
	require.Equal(t, model.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3}, c.Original)
	require.Equal(t, model.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3}, c.Modified)
	require.Equal(t, []model.RangeMapping{{
		Original: model.CharacterRange{Start: model.Position{LineNumber: 2, Column: 6}, End: model.Position{LineNumber: 2, Column: 7}},
		Modified: model.CharacterRange{Start: model.Position{LineNumber: 2, Column: 6}, End: model.Position{LineNumber: 2, Column: 7}},
	}}, c.InnerChanges)
}

func TestCompute_pureAppendedLine(t *testing.T) {
	original := []string{"a"}
	modified := []string{"a", "b"}

	got := Compute(original, modified, config.Config{})
	require.False(t, got.HitTimeout)
	require.Len(t, got.Changes, 1)

	c := got.Changes[0]
	require.Equal(t, model.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 2}, c.Original)
	require.Equal(t, model.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3}, c.Modified)
	require.Equal(t, []model.RangeMapping{{
		Original: model.CharacterRange{Start: model.Position{LineNumber: 2, Column: 1}, End: model.Position{LineNumber: 2, Column: 1}},
		Modified: model.CharacterRange{Start: model.Position{LineNumber: 2, Column: 1}, End: model.Position{LineNumber: 2, Column: 2}},
	}}, c.InnerChanges)
}

func TestCompute_midLineCharacterEdit(t *testing.T) {
	original := []string{"const oldValue = 42;"}
	modified := []string{"const newValue = 42;"}

	got := Compute(original, modified, config.Config{})
	require.False(t, got.HitTimeout)
	require.Len(t, got.Changes, 1)

	c := got.Changes[0]
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: 2}, c.Original)
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: 2}, c.Modified)
	require.NotEmpty(t, c.InnerChanges)

	covered := c.InnerChanges[0].Original
	for _, m := range c.InnerChanges[1:] {
		if m.Original.Start.Column < covered.Start.Column {
			covered.Start = m.Original.Start
		}
		if m.Original.End.Column > covered.End.Column {
			covered.End = m.Original.End
		}
	}
	require.LessOrEqual(t, covered.Start.Column, 7)
	require.GreaterOrEqual(t, covered.End.Column, 10)
	require.LessOrEqual(t, covered.End.Column-covered.Start.Column, 6)
}

func TestCompute_whitespaceIndentationIgnored(t *testing.T) {
	original := []string{"  foo();"}
	modified := []string{"    foo();"}

	got := Compute(original, modified, config.Config{IgnoreTrimWhitespace: true})
	require.Empty(t, got.Changes)
	require.False(t, got.HitTimeout)
}

func TestCompute_timeoutPathologicalInput(t *testing.T) {
	// Same 4000 unique lines on both sides but fully reversed: every line matches some line on the
	// other side (so the unique-element reduction can't shrink the problem to nothing), yet there is
	// no run of equal lines at corresponding positions, forcing the engine into a real O(ND) search
	// with a huge edit distance.
	n := 4000
	original := make([]string, n)
	for i := 0; i < n; i++ {
		original[i] = uniqueLine("line", i)
	}
	modified := make([]string, n)
	for i := 0; i < n; i++ {
		modified[i] = original[n-1-i]
	}

	got := Compute(original, modified, config.Config{MaxComputationTimeMs: 1})
	require.True(t, got.HitTimeout)
	require.Len(t, got.Changes, 1)

	c := got.Changes[0]
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: n + 1}, c.Original)
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: n + 1}, c.Modified)
	require.Len(t, c.InnerChanges, 1)
}

func TestCompute_emptyToEmpty(t *testing.T) {
	got := Compute(nil, nil, config.Config{})
	require.Empty(t, got.Changes)
	require.False(t, got.HitTimeout)
}

func TestCompute_emptyToNonEmpty(t *testing.T) {
	modified := []string{"x", "y", "z"}
	got := Compute(nil, modified, config.Config{})
	require.False(t, got.HitTimeout)
	require.Len(t, got.Changes, 1)

	c := got.Changes[0]
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: 1}, c.Original)
	require.Equal(t, model.LineRange{StartLineNumber: 1, EndLineNumberExclusive: 4}, c.Modified)
	require.Len(t, c.InnerChanges, 1)
	require.Equal(t, model.Position{LineNumber: 1, Column: 1}, c.InnerChanges[0].Modified.Start)
}

func uniqueLine(prefix string, i int) string {
	b := make([]byte, 0, 16)
	b = append(b, prefix...)
	for i > 0 {
		b = append(b, byte('a'+i%26))
		i /= 26
	}
	return string(b)
}
