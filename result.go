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

// ParenTrail is the range on a line, in output coordinates, that held a
// run of close-parens (and the whitespace between them) ending a form.
type ParenTrail struct {
	LineNo int
	StartX int
	EndX   int
}

// TabStop describes one opener's first-argument column, exported for the
// cursor's (or selection's) line so a host can render alignment guides.
type TabStop struct {
	Ch   string
	X    int
	LineNo int
	// ArgX is the column of the first argument token following the
	// opener, or nil if the opener has no children on its line.
	ArgX *int
}

// Result is the outcome of a single transformation.
type Result struct {
	Success bool
	Text    string

	// Cursor is only populated when the caller supplied Options.Cursor;
	// it is the same cursor, adjusted for any text shifted to its left.
	Cursor *Cursor

	TabStops    []TabStop
	ParenTrails []ParenTrail

	// Parens holds the top-level openers of the parse tree, populated
	// only when Options.ReturnParens was set on a successful run.
	Parens []*Opener

	Error *Error
}
