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

// Package textdiff renders a [vscdiff.LinesDiff] as human-readable text, for diagnostics and for
// byte-exact comparison against a reference implementation's output.
package textdiff

import (
	"fmt"
	"strings"

	"znkr.io/vscdiff"
)

// Render formats d in the reference diagnostic format:
//
//	Number of changes: N
//	Hit timeout: yes|no
//	[0] Lines a-b -> Lines c-d (k inner changes)
//	    Inner: L<line>:C<col>-L<line>:C<col> -> L<line>:C<col>-L<line>:C<col>
//
// A mapping with no inner changes renders the trailing " (no inner changes)" and no Inner lines.
// Line ranges are displayed inclusive (VSCode's exclusive end minus one), matching how the
// reference implementation prints them; an empty range therefore displays as "a-(a-1)".
func Render(d vscdiff.LinesDiff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of changes: %d\n", len(d.Changes))
	fmt.Fprintf(&b, "Hit timeout: %s\n", yesNo(d.HitTimeout))

	for i, c := range d.Changes {
		if len(c.InnerChanges) == 0 {
			fmt.Fprintf(&b, "[%d] Lines %s -> Lines %s (no inner changes)\n",
				i, displayLineRange(c.Original), displayLineRange(c.Modified))
			continue
		}
		fmt.Fprintf(&b, "[%d] Lines %s -> Lines %s (%d inner change%s)\n",
			i, displayLineRange(c.Original), displayLineRange(c.Modified), len(c.InnerChanges), plural(len(c.InnerChanges)))
		for _, m := range c.InnerChanges {
			fmt.Fprintf(&b, "    Inner: %s -> %s\n", displayCharRange(m.Original), displayCharRange(m.Modified))
		}
	}
	return b.String()
}

func displayLineRange(r vscdiff.LineRange) string {
	return fmt.Sprintf("%d-%d", r.StartLineNumber, r.EndLineNumberExclusive-1)
}

func displayCharRange(r vscdiff.CharacterRange) string {
	return fmt.Sprintf("L%d:C%d-L%d:C%d", r.Start.LineNumber, r.Start.Column, r.End.LineNumber, r.End.Column)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
