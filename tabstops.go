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

// advanceArgSearch steps every still-searching opener on the stack
// through its two-state search for an ArgX: seek the space ending the
// head token, then seek the first non-space character after it. A
// comment or line end freezes any search still in progress without
// setting ArgX.
func (s *scanState) advanceArgSearch(ch rune) {
	if !s.isInCode {
		return
	}
	if ch == '\n' {
		for _, o := range s.stack {
			o.argState = argDone
		}
		return
	}
	space := ch == ' ' || ch == '\t'
	for _, o := range s.stack {
		switch o.argState {
		case argSeekingSpace:
			if space {
				o.argState = argSeekingToken
			}
		case argSeekingToken:
			if !space {
				x := s.x
				o.ArgX = &x
				o.argState = argDone
			}
		}
	}
}

// captureTabStops snapshots the still-open stack's openers as the
// exported tab stops for the run's target line (the cursor's line, or
// the selection's start line when one was given).
func (s *scanState) captureTabStops() {
	stops := make([]TabStop, 0, len(s.stack))
	for _, o := range s.stack {
		stops = append(stops, TabStop{
			Ch:     string(o.Ch),
			X:      o.X,
			LineNo: o.LineNo,
			ArgX:   o.ArgX,
		})
	}
	s.tabStops = stops
}
