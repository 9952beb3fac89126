// Copyright 2026 The Parinfer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parinfer

import "strings"

// finalize packages the mutable scan into an immutable Result. Apart from
// run's check of the retry signal, it is the only place a scanState's
// fields are read after the scan stops.
func (s *scanState) finalize(origText string) Result {
	if !s.success {
		r := Result{Success: false, Text: origText, Error: s.err}
		if s.partialResult {
			r.Text = s.joinLines()
			if s.cursor != nil {
				r.Cursor = s.adjustedCursor()
			}
		}
		return r
	}

	r := Result{
		Success:     true,
		Text:        s.joinLines(),
		ParenTrails: append([]ParenTrail{}, s.parenTrails...),
		TabStops:    s.tabStops,
	}
	if s.cursor != nil {
		r.Cursor = s.adjustedCursor()
	}
	if s.returnParens {
		r.Parens = s.roots
	}
	return r
}

// joinLines rejoins the scanned lines, restoring CRLF endings if the
// input used any.
func (s *scanState) joinLines() string {
	parts := make([]string, len(s.lines))
	for i, l := range s.lines {
		parts[i] = string(l)
	}
	joined := strings.Join(parts, "\n")
	if s.hasCR {
		return string(crlfExpander.Replace([]byte(joined)))
	}
	return joined
}

// adjustedCursor shifts the supplied cursor by its line's total
// indentation delta, so a caller's caret tracks the text that moved
// under it rather than the column it started at.
func (s *scanState) adjustedCursor() *Cursor {
	c := *s.cursor
	switch {
	case s.cursorDx != nil:
		// Legacy hint: the host already knows how far this line shifted
		// and doesn't want us to recompute it from the scan.
		c.X += *s.cursorDx
	case c.LineNo >= 0 && c.LineNo < len(s.lineIndentDeltas):
		c.X += s.lineIndentDeltas[c.LineNo]
	}
	if c.X < 0 {
		c.X = 0
	}
	return &c
}
