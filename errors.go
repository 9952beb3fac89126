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

import "fmt"

// ErrorName identifies the condition an [Error] reports.
type ErrorName uint8

const (
	ErrQuoteDanger ErrorName = 1 + iota
	ErrEOLBackslash
	ErrUnclosedQuote
	ErrUnclosedParen
	ErrUnmatchedCloseParen
	ErrUnmatchedOpenParen
	ErrLeadingCloseParen
	ErrUnhandled
)

// String returns the wire name used in error messages and (historically)
// the JSON "name" field of this error. It is maintained by hand rather
// than generated, since the names are hyphenated and don't derive from
// the Go identifiers above.
func (n ErrorName) String() string {
	switch n {
	case ErrQuoteDanger:
		return "quote-danger"
	case ErrEOLBackslash:
		return "eol-backslash"
	case ErrUnclosedQuote:
		return "unclosed-quote"
	case ErrUnclosedParen:
		return "unclosed-paren"
	case ErrUnmatchedCloseParen:
		return "unmatched-close-paren"
	case ErrUnmatchedOpenParen:
		return "unmatched-open-paren"
	case ErrLeadingCloseParen:
		return "leading-close-paren"
	default:
		return "unhandled"
	}
}

var errorMessages = map[ErrorName]string{
	ErrQuoteDanger:         `Quotes must balanced inside comment blocks.`,
	ErrEOLBackslash:        `Line cannot end in a hanging backslash.`,
	ErrUnclosedQuote:       `String is missing a closing quote.`,
	ErrUnclosedParen:       `Unclosed open-paren.`,
	ErrUnmatchedCloseParen: `Unmatched close-paren.`,
	ErrUnmatchedOpenParen:  `Unmatched open-paren.`,
	ErrLeadingCloseParen:   `Line cannot lead with a close-paren.`,
	ErrUnhandled:           `Unhandled error.`,
}

// Error is a structured failure raised by a transformation.
type Error struct {
	Name    ErrorName
	Message string
	LineNo  int
	X       int
	// Extra is the companion position for paired errors: an unmatched
	// close-paren points at its would-be opener; an unclosed paren points
	// at its opener.
	Extra *Cursor
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Name, e.LineNo, e.X, e.Message)
}

func newError(name ErrorName, lineNo, x int, extra *Cursor) *Error {
	return &Error{
		Name:    name,
		Message: errorMessages[name],
		LineNo:  lineNo,
		X:       x,
		Extra:   extra,
	}
}

// retryReason names why a run must be redone from scratch under Paren
// Mode. It is recorded on the scanState as a plain value, which the scan
// loop checks after every character, rather than raised as a panic,
// mirroring how the rest of the package treats control flow as data.
type retryReason uint8

const (
	retryNone retryReason = iota
	retryLeadingCloseParen
	retryCursorHoldRelease
)

// raiseFatal ends the scan immediately with an unrecoverable error.
func (s *scanState) raiseFatal(name ErrorName, pos Cursor, extra *Cursor) {
	s.err = newError(name, pos.LineNo, pos.X, extra)
}

// cacheError records a deferred Indent Mode error without ending the
// scan. Only the first cached error is kept: later ones are usually
// consequences of the first and rarely more informative.
func (s *scanState) cacheError(name ErrorName, pos Cursor, extra *Cursor) {
	if s.cachedError == nil {
		s.cachedError = newError(name, pos.LineNo, pos.X, extra)
	}
}
