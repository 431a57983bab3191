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

// IsSubwordBoundary reports whether there is a subword boundary immediately before offset i in
// buf, recognizing CamelCase, snake_case, and kebab-case conventions. Used by the
// extend-to-subword refinement step when the caller opts in (Options.ExtendToSubwords).
func IsSubwordBoundary(buf []byte, i int) bool {
	if i <= 0 || i >= len(buf) {
		return true
	}
	prev, cur := buf[i-1], buf[i]

	if prev == '_' || prev == '-' || cur == '_' || cur == '-' {
		return true
	}
	if isLower(prev) && isUpper(cur) {
		// camelCase -> Case
		return true
	}
	if isUpper(prev) && isUpper(cur) && i+1 < len(buf) && isLower(buf[i+1]) {
		// ABCDef -> boundary before the last upper letter of a run that starts a new word
		return true
	}
	if isDigit(prev) != isDigit(cur) {
		return true
	}
	return false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
