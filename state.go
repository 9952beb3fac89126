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

// scanState is the mutable record a single transformation scans into. It
// plays the same role [*Parser] plays in the teacher library: owned
// exclusively by one run, mutated in place, and eventually packaged into
// an immutable [Result] by finalize. Unlike Parser, a scanState never
// reads from an io.Reader — its whole input is the pre-split line slice
// it was built from.
type scanState struct {
	mode  scanMode
	smart bool

	hasCR      bool
	inputLines []string
	lines      [][]rune

	lineNo int
	x      int

	inputLineNo int
	inputX      int

	ch string

	stack       parenStack
	trail       parenTrail
	clamped     clampedTrail
	parenTrails []ParenTrail
	roots       []*Opener // top-level openers, recorded when returnParens is set

	isInCode       bool
	isInStr        bool
	isInComment    bool
	isEscaping     bool
	isEscaped      bool
	quoteDanger    bool
	trackingIndent bool

	indentDelta int
	// lineIndentDeltas records each line's final indentDelta, so the
	// cursor can be adjusted by however far its own line moved.
	lineIndentDeltas []int

	maxIndent int

	cursor     *Cursor
	prevCursor *Cursor
	cursorDx   *int
	targetLine *int

	changes map[int]map[int]changeDelta

	tabStops []TabStop

	err         *Error
	cachedError *Error
	success     bool

	quoteDangerPos Cursor
	openQuotePos   Cursor

	forceBalance  bool
	returnParens  bool
	partialResult bool

	retry retryReason
}

func newScanState(text string, mode scanMode, smart bool, opts Options) *scanState {
	lines, hasCR := splitLines(text)
	s := &scanState{
		mode:             mode,
		smart:            smart,
		hasCR:            hasCR,
		inputLines:       lines,
		lines:            make([][]rune, len(lines)),
		lineIndentDeltas: make([]int, len(lines)),
		maxIndent:        unboundedIndent,
		cursor:           opts.Cursor,
		prevCursor:       opts.PrevCursor,
		cursorDx:         opts.CursorDx,
		forceBalance:     opts.ForceBalance,
		returnParens:     opts.ReturnParens,
		partialResult:    opts.PartialResult,
	}
	s.isInCode = true
	s.trail.lineNo = -1

	if opts.SelectionStartLine != nil {
		line := *opts.SelectionStartLine
		s.targetLine = &line
	} else if opts.Cursor != nil {
		line := opts.Cursor.LineNo
		s.targetLine = &line
	}

	s.changes = preprocessChanges(opts.Changes)
	return s
}
