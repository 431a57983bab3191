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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"znkr.io/vscdiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name                 string
		ignoreTrimWhitespace bool
		maxComputationTimeMs int64
		computeMoves         bool
		extendToSubwords     bool
		want                 config.Config
	}{
		{
			name:                 "defaults",
			maxComputationTimeMs: config.DefaultMaxComputationTimeMs,
			want:                 config.Config{MaxComputationTimeMs: config.DefaultMaxComputationTimeMs},
		},
		{
			name:                 "ignore-trim-whitespace",
			ignoreTrimWhitespace: true,
			maxComputationTimeMs: config.DefaultMaxComputationTimeMs,
			want: config.Config{
				IgnoreTrimWhitespace: true,
				MaxComputationTimeMs: config.DefaultMaxComputationTimeMs,
			},
		},
		{
			name:                 "negative-timeout-clamped-to-zero",
			maxComputationTimeMs: -5,
			want:                 config.Config{MaxComputationTimeMs: 0},
		},
		{
			name:                 "unlimited-timeout",
			maxComputationTimeMs: 0,
			want:                 config.Config{MaxComputationTimeMs: 0},
		},
		{
			name:                 "extend-to-subwords",
			maxComputationTimeMs: 1000,
			extendToSubwords:     true,
			want: config.Config{
				MaxComputationTimeMs: 1000,
				ExtendToSubwords:     true,
			},
		},
		{
			name:                 "compute-moves-is-parsed-but-ignored-downstream",
			maxComputationTimeMs: 1000,
			computeMoves:         true,
			want: config.Config{
				MaxComputationTimeMs: 1000,
				ComputeMoves:         true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.ignoreTrimWhitespace, tt.maxComputationTimeMs, tt.computeMoves, tt.extendToSubwords)
			assert.Equal(t, tt.want, got)
		})
	}
}
