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

// elementCategory classifies a single character for character-level hashing, strong-equality, and
// boundary scoring.
type elementCategory uint8

const (
	categoryWordChar elementCategory = iota
	categoryWhitespace
	categoryPunctuation
	categoryLineBreak
)

func categorize(c byte) elementCategory {
	switch {
	case c == '\n':
		return categoryLineBreak
	case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
		return categoryWhitespace
	case c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80:
		return categoryWordChar
	default:
		return categoryPunctuation
	}
}

// IsWordChar reports whether b is part of a word-character run for extend-to-word purposes.
func IsWordChar(b byte) bool {
	return categorize(b) == categoryWordChar
}
