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

// Package vscdiff computes line diffs with character-level inner changes, matching the reference
// behavior of VS Code's diff editor.
//
// Unlike a plain Myers diff, [ComputeDiff] additionally shifts and joins diff boundaries to the
// positions a human reviewer would expect, and refines every changed line down to the exact
// characters that changed within it. The result is the structure a side-by-side diff viewer needs
// to render decorations, without doing any rendering itself.
package vscdiff
