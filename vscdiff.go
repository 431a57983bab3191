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

package vscdiff

import (
	"znkr.io/vscdiff/internal/config"
	"znkr.io/vscdiff/internal/linediff"
	"znkr.io/vscdiff/internal/model"
)

// OffsetRange is a half-open interval [Start, EndExclusive) over a 0-based index space.
type OffsetRange = model.OffsetRange

// LineRange is a half-open interval of 1-based line numbers, [StartLineNumber,
// EndLineNumberExclusive). An empty range denotes a position between lines.
type LineRange = model.LineRange

// Position is a 1-based (line, column) position. Column 1 is before the first character.
type Position = model.Position

// CharacterRange is an inclusive-start, exclusive-end range in (line, column) space.
type CharacterRange = model.CharacterRange

// RangeMapping is a single character-level inner change inside a line diff.
type RangeMapping = model.RangeMapping

// DetailedLineRangeMapping is one line-range mapping plus the character-level changes nested
// inside it.
type DetailedLineRangeMapping = model.DetailedLineRangeMapping

// Move describes a detected move of a block of lines. Always empty: [Options.ComputeMoves] is
// accepted for interface compatibility but move detection across non-adjacent regions is not
// implemented.
type Move = model.Move

// LinesDiff is the result of [ComputeDiff].
type LinesDiff = model.LinesDiff

// Options configures [ComputeDiff].
type Options struct {
	// IgnoreTrimWhitespace treats two lines as equal for line-level matching if they differ only
	// in leading/trailing whitespace. Character-level refinement does not use it: inside a changed
	// line range, whitespace differences still show up in inner changes.
	IgnoreTrimWhitespace bool

	// MaxComputationTimeMs bounds the wall-clock time spent on the diff; 0 means unlimited. The
	// budget is shared across the line-level pass and every line's character-level refinement. Pass
	// [DefaultMaxComputationTimeMs] for the reference default of 5 seconds.
	MaxComputationTimeMs uint32

	// ComputeMoves is accepted but ignored: move detection is not implemented.
	ComputeMoves bool

	// ExtendToSubwords additionally extends character diffs to subword boundaries (CamelCase,
	// snake_case, kebab-case), not just whole-word boundaries.
	ExtendToSubwords bool
}

// DefaultMaxComputationTimeMs is the reference default timeout. [ComputeDiff] does not substitute it
// for a zero [Options.MaxComputationTimeMs], which means unlimited; the vscdiff command uses it as
// the default of its -T flag.
const DefaultMaxComputationTimeMs = config.DefaultMaxComputationTimeMs

// ComputeDiff computes a line diff between original and modified, including character-level inner
// changes within every changed line range.
//
// The call is pure and deterministic: it performs no I/O, holds no global state, and two calls with
// identical arguments produce identical results. A negative or otherwise invalid
// MaxComputationTimeMs cannot be expressed since the field is unsigned; the zero value means
// unlimited.
func ComputeDiff(original, modified []string, opts Options) LinesDiff {
	cfg := config.FromOptions(opts.IgnoreTrimWhitespace, int64(opts.MaxComputationTimeMs), opts.ComputeMoves, opts.ExtendToSubwords)
	return linediff.Compute(original, modified, cfg)
}
