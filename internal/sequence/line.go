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

package sequence

import "strings"

// Indentation-boundary scoring constants, ported from Michael Haggerty's indent heuristic
// (https://github.com/mhagger/diff-slider-tools): a diff boundary is preferred at blank lines and
// at lines that are not more indented than their neighbors.
const (
	maxIndentScore   = 200
	maxBlankRun      = 20
	blankLineBonus   = 30
	fileBoundaryBias = 1
	dedentBonus      = 24
	sameIndentBonus  = 4
	indentPenalty    = 4
)

// LineSequence is the sequence abstraction over a slice of lines consumed by the line-level Myers
// pass and optimization.
//
// It owns references to the original string lines plus one derived content hash per line,
// computed under the caller's ignore-trim-whitespace setting. It is read-only after construction
// and created fresh for each compute_diff call.
type LineSequence struct {
	lines                []string
	hashes               []uint64
	startLineNumber      int
	ignoreTrimWhitespace bool
}

// NewLineSequence builds a LineSequence over lines, where lines[0] is line number startLineNumber
// in the caller's numbering.
func NewLineSequence(lines []string, startLineNumber int, ignoreTrimWhitespace bool) *LineSequence {
	s := &LineSequence{
		lines:                lines,
		hashes:               make([]uint64, len(lines)),
		startLineNumber:      startLineNumber,
		ignoreTrimWhitespace: ignoreTrimWhitespace,
	}
	for i, l := range lines {
		body := l
		if ignoreTrimWhitespace {
			body = strings.TrimSpace(l)
		}
		s.hashes[i] = hashString(body)
	}
	return s
}

func (s *LineSequence) Length() int                 { return len(s.lines) }
func (s *LineSequence) ElementHash(i int) uint64     { return s.hashes[i] }
func (s *LineSequence) Line(i int) string            { return s.lines[i] }
func (s *LineSequence) LineNumber(i int) int         { return s.startLineNumber + i }

// IsStronglyEqual compares the raw line content, which is strictly stronger than ElementHash
// equality when ignoreTrimWhitespace folds differing indentation into the same hash.
func (s *LineSequence) IsStronglyEqual(i, j int) bool {
	return s.lines[i] == s.lines[j]
}

// GetBoundaryScore rates position i (a boundary before line i, for i in [0, Length()]) using the
// indentation heuristic: blank lines and lines that dedent relative to their predecessor make
// better diff boundaries than lines indented deeper than their surroundings.
func (s *LineSequence) GetBoundaryScore(i int) int32 {
	var score int32

	if i <= 0 || i >= s.Length() {
		score += fileBoundaryBias
	}

	before := s.blankRunBefore(i)
	after := s.blankRunAfter(i)
	score += int32(blankLineBonus * min(before+after, maxBlankRun))

	preIndent := s.nearestIndent(i-1, -1)
	postIndent := s.nearestIndent(i, 1)
	switch {
	case preIndent < 0 || postIndent < 0:
		// One side is entirely blank; no relative-indentation signal available.
	case postIndent < preIndent:
		score += dedentBonus
	case postIndent == preIndent:
		score += sameIndentBonus
	default:
		score -= indentPenalty
	}

	return score
}

func (s *LineSequence) blankRunBefore(i int) int {
	n := 0
	for k := i - 1; k >= 0 && n < maxBlankRun; k-- {
		if getIndent(s.lines[k]) != -1 {
			break
		}
		n++
	}
	return n
}

func (s *LineSequence) blankRunAfter(i int) int {
	n := 0
	for k := i; k < s.Length() && n < maxBlankRun; k++ {
		if getIndent(s.lines[k]) != -1 {
			break
		}
		n++
	}
	return n
}

// nearestIndent scans from i in direction dir (+1 or -1) for the first non-blank line's
// indentation, returning -1 if none is found within range.
func (s *LineSequence) nearestIndent(i, dir int) int {
	for k := i; k >= 0 && k < s.Length(); k += dir {
		if ind := getIndent(s.lines[k]); ind != -1 {
			return ind
		}
	}
	return -1
}

// getIndent returns the number of columns of leading whitespace (tabs expand to the next multiple
// of 8), clamped to maxIndentScore, or -1 if the line is entirely whitespace.
func getIndent(line string) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\r', '\n', '\v':
			// ignore other whitespace
		default:
			return indent
		}
		if indent >= maxIndentScore {
			return maxIndentScore
		}
	}
	return -1
}
