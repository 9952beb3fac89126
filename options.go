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

// Cursor is a zero-based position in input coordinates.
type Cursor struct {
	X      int
	LineNo int
}

// Change describes a single edit the host applied to the text since the
// previous run, in input coordinates of the line it occurred on.
type Change struct {
	LineNo  int
	X       int
	OldText string
	NewText string
}

// Options carries the editor-supplied context for a single transformation.
// All fields are optional; a zero Options is valid and disables every
// cursor-aware and change-aware behavior.
type Options struct {
	// Cursor is the cursor position in input coordinates.
	Cursor *Cursor
	// PrevCursor is the cursor position before the edit that triggered
	// this run. Supplying it enables cursor-hold release in smart mode.
	PrevCursor *Cursor
	// CursorDx is a legacy Paren Mode hint: the signed column shift
	// already applied to the cursor's line.
	CursorDx *int
	// SelectionStartLine, when set, makes SmartMode run Paren Mode
	// directly instead of Indent Mode, and selects which line's tab stops
	// are exported.
	SelectionStartLine *int
	// Changes lists the edits applied to the text since the previous run.
	Changes []Change
	// PartialResult requests that lines and cursor position computed so
	// far be included in the Result even when the run fails.
	PartialResult bool
	// ForceBalance suppresses leading-close-paren errors in Indent Mode.
	ForceBalance bool
	// ReturnParens requests the Parens parse tree in the Result.
	ReturnParens bool
}
