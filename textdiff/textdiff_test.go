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

package textdiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"znkr.io/vscdiff"
	"znkr.io/vscdiff/textdiff"
)

func TestRender_noChanges(t *testing.T) {
	got := textdiff.Render(vscdiff.LinesDiff{})
	require.Equal(t, "Number of changes: 0\nHit timeout: no\n", got)
}

func TestRender_singleLineReplacement(t *testing.T) {
	d := vscdiff.LinesDiff{
		Changes: []vscdiff.DetailedLineRangeMapping{{
			Original: vscdiff.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3},
			Modified: vscdiff.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3},
			InnerChanges: []vscdiff.RangeMapping{{
				Original: vscdiff.CharacterRange{Start: vscdiff.Position{LineNumber: 2, Column: 6}, End: vscdiff.Position{LineNumber: 2, Column: 7}},
				Modified: vscdiff.CharacterRange{Start: vscdiff.Position{LineNumber: 2, Column: 6}, End: vscdiff.Position{LineNumber: 2, Column: 7}},
			}},
		}},
	}
	want := "Number of changes: 1\n" +
		"Hit timeout: no\n" +
		"[0] Lines 2-2 -> Lines 2-2 (1 inner change)\n" +
		"    Inner: L2:C6-L2:C7 -> L2:C6-L2:C7\n"
	require.Equal(t, want, textdiff.Render(d))
}

func TestRender_pureAppendedLine(t *testing.T) {
	d := vscdiff.LinesDiff{
		Changes: []vscdiff.DetailedLineRangeMapping{{
			Original: vscdiff.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 2},
			Modified: vscdiff.LineRange{StartLineNumber: 2, EndLineNumberExclusive: 3},
			InnerChanges: []vscdiff.RangeMapping{{
				Original: vscdiff.CharacterRange{Start: vscdiff.Position{LineNumber: 2, Column: 1}, End: vscdiff.Position{LineNumber: 2, Column: 1}},
				Modified: vscdiff.CharacterRange{Start: vscdiff.Position{LineNumber: 2, Column: 1}, End: vscdiff.Position{LineNumber: 2, Column: 2}},
			}},
		}},
	}
	want := "Number of changes: 1\n" +
		"Hit timeout: no\n" +
		"[0] Lines 2-1 -> Lines 2-2 (1 inner change)\n" +
		"    Inner: L2:C1-L2:C1 -> L2:C1-L2:C2\n"
	require.Equal(t, want, textdiff.Render(d))
}

func TestRender_noInnerChanges(t *testing.T) {
	d := vscdiff.LinesDiff{
		Changes: []vscdiff.DetailedLineRangeMapping{{
			Original: vscdiff.LineRange{StartLineNumber: 3, EndLineNumberExclusive: 3},
			Modified: vscdiff.LineRange{StartLineNumber: 3, EndLineNumberExclusive: 4},
		}},
	}
	want := "Number of changes: 1\n" +
		"Hit timeout: no\n" +
		"[0] Lines 3-2 -> Lines 3-3 (no inner changes)\n"
	require.Equal(t, want, textdiff.Render(d))
}

func TestRender_endToEnd_singleLineReplacement(t *testing.T) {
	original := []string{"line 1", "line 2"}
	modified := []string{"line 1", "line 3"}

	got := textdiff.Render(vscdiff.ComputeDiff(original, modified, vscdiff.Options{}))
	require.True(t, strings.HasPrefix(got, "Number of changes: 1\nHit timeout: no\n[0] Lines 2-2 -> Lines 2-2"))
	require.Contains(t, got, "Inner: L2:C6-L2:C7 -> L2:C6-L2:C7")
}

func TestRender_endToEnd_timeout(t *testing.T) {
	n := 4000
	original := make([]string, n)
	for i := range original {
		original[i] = uniqueLine(i)
	}
	modified := make([]string, n)
	for i := range modified {
		modified[i] = original[n-1-i]
	}

	got := textdiff.Render(vscdiff.ComputeDiff(original, modified, vscdiff.Options{MaxComputationTimeMs: 1}))
	require.True(t, strings.HasPrefix(got, "Number of changes: 1\nHit timeout: yes\n[0] Lines 1-4000 -> Lines 1-4000"))
}

func uniqueLine(i int) string {
	b := make([]byte, 0, 16)
	b = append(b, "line"...)
	for i > 0 {
		b = append(b, byte('a'+i%26))
		i /= 26
	}
	return string(b)
}
