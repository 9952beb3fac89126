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

// changeDelta records how much a single edit on a line changed that
// line's length, keyed by where its replacement text ends. Edits are
// assumed single-line, matching every change a host actually reports
// between two runs of the same document.
type changeDelta struct {
	oldEndX int
	newEndX int
}

func preprocessChanges(changes []Change) map[int]map[int]changeDelta {
	if len(changes) == 0 {
		return nil
	}
	out := make(map[int]map[int]changeDelta, len(changes))
	for _, c := range changes {
		byX := out[c.LineNo]
		if byX == nil {
			byX = make(map[int]changeDelta)
			out[c.LineNo] = byX
		}
		newEndX := c.X + len([]rune(c.NewText))
		byX[newEndX] = changeDelta{
			oldEndX: c.X + len([]rune(c.OldText)),
			newEndX: newEndX,
		}
	}
	return out
}

// applyChangeDelta adds the length change of any edit ending exactly at
// the scanner's current input position to indentDelta, so that
// getParentOpenerIndex can tell a real dedent from a line an edit merely
// shifted underneath an unmoved opener.
func (s *scanState) applyChangeDelta() {
	if s.changes == nil {
		return
	}
	byX, ok := s.changes[s.inputLineNo]
	if !ok {
		return
	}
	if d, ok := byX[s.inputX]; ok {
		s.indentDelta += d.newEndX - d.oldEndX
	}
}
