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

// holdRange returns the column range, in output coordinates, within
// which a cursor sitting on opener's line is considered to be "holding"
// its trail open: to the right of the enclosing form, no further right
// than the opener itself.
func (s *scanState) holdRange(opener *Opener) (lo, hi int) {
	if parent := s.stack.peek(); parent != nil {
		lo = parent.X + 1
	}
	return lo, opener.X
}

func (s *scanState) isCursorHoldingOpener(opener *Opener) bool {
	if s.cursor == nil || s.cursor.LineNo != opener.LineNo {
		return false
	}
	lo, hi := s.holdRange(opener)
	return s.cursor.X >= lo && s.cursor.X <= hi
}

func (s *scanState) wasPrevCursorHoldingOpener(opener *Opener) bool {
	if s.prevCursor == nil || s.prevCursor.LineNo != opener.LineNo {
		return false
	}
	lo, hi := s.holdRange(opener)
	return s.prevCursor.X >= lo && s.prevCursor.X <= hi
}

// checkCursorHold runs after a matched close-paren has just been popped
// in smart Indent Mode. While the cursor sits inside the opener's trail,
// the trail is clamped open rather than finalized, so the user can keep
// typing more forms into it; once the cursor moves off that hold, the
// whole document is retried under Paren Mode to settle on the trail the
// user actually wants.
func (s *scanState) checkCursorHold(opener *Opener) {
	if s.mode != modeIndent || !s.smart {
		return
	}
	if s.isCursorHoldingOpener(opener) {
		s.clamped = clampedTrail{
			startX:  s.trail.startX,
			endX:    s.trail.endX,
			openers: append([]*Opener{}, s.trail.openers...),
		}
		s.trail = parenTrail{lineNo: s.lineNo, startX: s.x + 1, endX: s.x + 1}
		return
	}
	if s.wasPrevCursorHoldingOpener(opener) {
		s.retry = retryCursorHoldRelease
	}
}
