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

// Package model contains the result data types shared by every stage of the diff pipeline.
//
// These types are defined once here, in an internal package, because both the pipeline stages
// (internal/myers, internal/lineopt, internal/charrefine, internal/linediff) and the public root
// package need them; the root package re-exports the public subset as type aliases.
package model

// OffsetRange is a half-open interval [Start, EndExclusive) over a 0-based index space.
type OffsetRange struct {
	Start        int
	EndExclusive int
}

func (r OffsetRange) Length() int   { return r.EndExclusive - r.Start }
func (r OffsetRange) IsEmpty() bool { return r.Start == r.EndExclusive }

// Contains reports whether i lies in [Start, EndExclusive).
func (r OffsetRange) Contains(i int) bool { return r.Start <= i && i < r.EndExclusive }

// LineRange is a half-open interval of 1-based line numbers, [StartLineNumber,
// EndLineNumberExclusive). An empty range (Start == End) denotes a position between lines.
type LineRange struct {
	StartLineNumber        int
	EndLineNumberExclusive int
}

func (r LineRange) IsEmpty() bool   { return r.StartLineNumber == r.EndLineNumberExclusive }
func (r LineRange) LineCount() int  { return r.EndLineNumberExclusive - r.StartLineNumber }
func (r LineRange) Contains(ln int) bool {
	return r.StartLineNumber <= ln && ln < r.EndLineNumberExclusive
}

// Position is a 1-based (line, column) position. Column 1 is before the first character.
type Position struct {
	LineNumber int
	Column     int
}

func (p Position) Less(o Position) bool {
	if p.LineNumber != o.LineNumber {
		return p.LineNumber < o.LineNumber
	}
	return p.Column < o.Column
}

// CharacterRange is an inclusive-start, exclusive-end range in (line, column) space. It may span
// multiple lines; a change ending at a line terminator is expressed as ending at column 1 of the
// next line.
type CharacterRange struct {
	Start Position
	End   Position
}

func (r CharacterRange) IsEmpty() bool { return r.Start == r.End }

// SequenceDiff is a pair of offset ranges describing one edit on two abstract sequences.
type SequenceDiff struct {
	Seq1 OffsetRange
	Seq2 OffsetRange
}

func (d SequenceDiff) IsEmpty() bool { return d.Seq1.IsEmpty() && d.Seq2.IsEmpty() }

// RangeMapping is a single character-level inner change inside a line diff.
type RangeMapping struct {
	Original CharacterRange
	Modified CharacterRange
}

// DetailedLineRangeMapping is one line-range mapping plus the character-level changes nested
// inside it.
type DetailedLineRangeMapping struct {
	Original     LineRange
	Modified     LineRange
	InnerChanges []RangeMapping
}

// Move describes a detected move of a block of lines. Always empty in this implementation; the
// type exists for forward compatibility with move detection, which no stage of the pipeline
// performs.
type Move struct {
	Original LineRange
	Modified LineRange
}

// LinesDiff is the top-level result of computing a diff between two line arrays.
type LinesDiff struct {
	Changes    []DetailedLineRangeMapping
	Moves      []Move
	HitTimeout bool
}
