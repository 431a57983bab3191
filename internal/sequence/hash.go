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

import "hash/maphash"

var hashSeed = maphash.MakeSeed()

func hashString(s string) uint64 {
	return maphash.String(hashSeed, s)
}

func hashByte(category elementCategory, c byte) uint64 {
	// Fold whitespace bytes into a single shared bucket per category so that, e.g., a space and a
	// tab hash equal (weakly equal) while remaining distinguishable by IsStronglyEqual, matching
	// the "different whitespace characters are weakly-equal but not strongly-equal" example.
	if category == categoryWhitespace {
		return uint64(categoryWhitespace)
	}
	return maphash.Bytes(hashSeed, []byte{byte(category), c})
}
