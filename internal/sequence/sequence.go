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

// Package sequence provides the two concrete sequence implementations that flow into the shared
// Myers engine and line/character optimization passes: LineSequence and LinesSliceCharSequence.
//
// Both expose the same capability set instead of sharing a base type: a length, a total hash
// function, a stronger equivalence than hash-equality, and an optional boundary score. This
// mirrors how internal/myers in the teacher package abstracts over T via an equality function,
// generalized here to a richer trait so that one optimizer (internal/lineopt) can operate on
// either sequence.
package sequence

// Sequence is the capability set the Myers engine and the optimization passes need from either
// concrete sequence.
type Sequence interface {
	// Length returns the number of elements.
	Length() int

	// ElementHash returns a hash of the content at position i. Two positions are considered equal
	// by the Myers engine iff their hashes match.
	ElementHash(i int) uint64

	// IsStronglyEqual reports whether i and j are equal under a stricter equivalence than
	// ElementHash equality. Used by post-processing to avoid merging near-matches (e.g. lines or
	// characters that differ only in whitespace when hashing ignores whitespace).
	IsStronglyEqual(i, j int) bool
}

// BoundaryScorer is implemented by sequences that can rate how natural a position is for placing a
// diff boundary. Higher is better. Position i is a boundary between element i-1 and element i;
// i may range over [0, Length()].
type BoundaryScorer interface {
	GetBoundaryScore(i int) int32
}
