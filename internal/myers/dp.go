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

package myers

import "znkr.io/vscdiff/internal/model"

// computeDP is a conventional O(NM) longest-common-subsequence dynamic-programming engine, used
// in place of the divide-and-conquer engine when the combined input length is below
// smallInputThreshold: it is simpler, branch-predictable, and empirically faster for tiny inputs,
// and its output contract is identical to the Myers engine's.
func computeDP(x, y Sequence, smin, smax, tmin, tmax, n, m int) []model.SequenceDiff {
	N, M := smax-smin, tmax-tmin

	buf := make([]int32, (N+1)*(M+1))
	dp := make([][]int32, N+1)
	for i := range dp {
		dp[i] = buf[i*(M+1) : (i+1)*(M+1) : (i+1)*(M+1)]
	}
	for i := 1; i <= N; i++ {
		for j := 1; j <= M; j++ {
			if x.ElementHash(smin+i-1) == y.ElementHash(tmin+j-1) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	rx, ry := newFlags(n, m)
	i, j := N, M
	for i > 0 && j > 0 {
		switch {
		case x.ElementHash(smin+i-1) == y.ElementHash(tmin+j-1):
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
			rx[smin+i] = true
		default:
			j--
			ry[tmin+j] = true
		}
	}
	for i > 0 {
		i--
		rx[smin+i] = true
	}
	for j > 0 {
		j--
		ry[tmin+j] = true
	}

	return fromFlags(rx, ry, n, m)
}
