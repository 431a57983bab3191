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

// Package config provides the shared, normalized configuration used by every stage of the diff
// pipeline.
//
// This package is an implementation detail; the configuration surface for users is provided via
// the root package's Options type, which FromOptions normalizes into a Config.
package config

// DefaultMaxComputationTimeMs is the default wall-clock budget for a compute_diff call.
const DefaultMaxComputationTimeMs = 5000

// Config collects all normalized parameters threaded through the pipeline.
type Config struct {
	// IgnoreTrimWhitespace makes line hashing ignore leading/trailing whitespace. No stage scans
	// the unchanged gaps between line diffs for whitespace-only changes.
	IgnoreTrimWhitespace bool

	// MaxComputationTimeMs is the wall-clock budget for the whole compute_diff call, shared by the
	// line-level Myers pass and every character-level refinement. 0 means unlimited.
	MaxComputationTimeMs uint32

	// ComputeMoves is carried through but never read: no stage of the pipeline detects moves, and
	// LinesDiff.Moves is always nil.
	ComputeMoves bool

	// ExtendToSubwords enables the subword-extension step of character-level refinement.
	ExtendToSubwords bool
}

// FromOptions normalizes raw option fields into a Config, applying the boundary rules from the
// error-handling design: a negative timeout becomes 0, i.e. unlimited. ComputeDiff always passes a
// non-negative value (its field is unsigned), so only direct callers of FromOptions reach this case.
func FromOptions(ignoreTrimWhitespace bool, maxComputationTimeMs int64, computeMoves, extendToSubwords bool) Config {
	ms := maxComputationTimeMs
	if ms < 0 {
		ms = 0
	}
	return Config{
		IgnoreTrimWhitespace: ignoreTrimWhitespace,
		MaxComputationTimeMs: uint32(ms),
		ComputeMoves:         computeMoves,
		ExtendToSubwords:     extendToSubwords,
	}
}
