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

package rvecs

import "testing"

func TestMake(t *testing.T) {
	rx, ry := Make(3, 2)
	if len(rx) != 4 || len(ry) != 3 {
		t.Fatalf("Make(3, 2) = (len %d, len %d), want (4, 3)", len(rx), len(ry))
	}
	for i := range rx {
		if rx[i] {
			t.Fatalf("rx[%d] = true, want false", i)
		}
	}
	for i := range ry {
		if ry[i] {
			t.Fatalf("ry[%d] = true, want false", i)
		}
	}
}

func TestMake_zero(t *testing.T) {
	rx, ry := Make(0, 0)
	if len(rx) != 1 || len(ry) != 1 {
		t.Fatalf("Make(0, 0) = (len %d, len %d), want (1, 1)", len(rx), len(ry))
	}
}
