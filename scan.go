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

// scan drives the whole single pass: one line at a time, one character
// at a time, stopping as soon as a fatal error or a whole-document retry
// is raised.
func (s *scanState) scan() {
	s.resetTrailState()
	for lineNo := range s.inputLines {
		s.initLine(lineNo)
		for _, r := range []rune(s.inputLines[lineNo]) {
			s.applyChangeDelta()
			s.processChar(r)
			if s.err != nil || s.retry != retryNone {
				return
			}
		}
		s.applyChangeDelta()
		s.processChar('\n')
		if s.err != nil || s.retry != retryNone {
			return
		}
		s.checkEndOfLine()
		if s.err != nil || s.retry != retryNone {
			return
		}
	}
	s.finishScan()
}

func (s *scanState) resetTrailState() {
	s.trail = parenTrail{lineNo: -1}
	s.clamped = clampedTrail{}
}

func (s *scanState) initLine(lineNo int) {
	s.lineNo = lineNo
	s.inputLineNo = lineNo
	s.x = 0
	s.inputX = 0
	s.indentDelta = 0
	if s.lines[lineNo] == nil {
		s.lines[lineNo] = []rune{}
	}
	s.trackingIndent = !s.isInStr && (s.mode == modeParen || len(s.stack) > 0)
}

// checkEndOfLine runs the mode-specific end-of-line trail cleanup and
// captures this run's tab stops if this was the target line.
func (s *scanState) checkEndOfLine() {
	switch s.mode {
	case modeParen:
		s.cleanParenTrail(s.lineNo)
	case modeIndent:
		s.clampParenTrailToCursor(s.lineNo)
	}
	if s.targetLine != nil && *s.targetLine == s.lineNo {
		s.captureTabStops()
	}
}

// processChar runs one input character through escaping, the indent
// hook, and the main dispatch switch, then commits whatever s.ch ended
// up holding and advances the scanner's position.
func (s *scanState) processChar(ch rune) {
	s.ch = string(ch)
	s.isEscaped = false

	switch {
	case s.isEscaping:
		s.isEscaping = false
		s.isEscaped = true
		if ch == '\n' {
			if s.isInCode {
				s.raiseFatal(ErrEOLBackslash, Cursor{X: s.inputX, LineNo: s.inputLineNo}, nil)
				return
			}
			s.onNewlineChar()
		}
	case s.trackingIndent && !isIndentWhitespace(ch):
		consumed := s.onIndentHook(ch)
		if s.err != nil || s.retry != retryNone {
			return
		}
		if consumed {
			s.finishChar(ch)
			return
		}
		s.dispatchChar(ch)
	default:
		s.dispatchChar(ch)
	}

	if s.err != nil || s.retry != retryNone {
		return
	}
	s.finishChar(ch)
}

// finishChar runs the bookkeeping common to every character: recompute
// isInCode, reset or extend the paren trail, advance the arg-tab-stop
// search, commit s.ch to the line, and move on to the next input column.
func (s *scanState) finishChar(ch rune) {
	s.isInCode = !s.isInStr && !s.isInComment
	if s.isInCode && !isTrailWhitespace(ch) && !isCloseParenRune(ch) {
		s.flushTrail()
		end := s.x + len([]rune(s.ch))
		s.trail = parenTrail{lineNo: s.lineNo, startX: end, endX: end}
	}
	s.advanceArgSearch(ch)
	s.commit()
	s.inputX++
}

func (s *scanState) commit() {
	if s.ch != "" {
		s.lines[s.lineNo] = append(s.lines[s.lineNo], []rune(s.ch)...)
	}
	s.x += len([]rune(s.ch))
}

func (s *scanState) dispatchChar(ch rune) {
	switch {
	case isOpenParenRune(ch):
		if s.isInCode {
			s.onOpenParen(byte(ch))
		}
	case isCloseParenRune(ch):
		if s.isInCode {
			s.onCloseParen(byte(ch))
		}
	case ch == '"':
		s.onQuote()
	case ch == ';':
		if s.isInCode {
			s.onSemicolon()
		}
	case ch == '\\':
		s.isEscaping = true
	case ch == '\t':
		if s.isInCode {
			s.ch = string(tabExpander.Replace([]byte{'\t'}))
		}
	case ch == '\n':
		s.onNewlineChar()
	}
}

func (s *scanState) onOpenParen(ch byte) {
	o := newOpener(ch, s.x, s.lineNo, s.inputX, s.inputLineNo, s.indentDelta)
	s.stack.push(o)
}

func (s *scanState) onCloseParen(ch byte) {
	top := s.stack.peek()
	switch {
	case top != nil && closerOf[top.Ch] == ch:
		opener := s.closeInPlace()
		s.checkCursorHold(opener)
	case top != nil:
		pos := top.Position()
		s.failUnmatched(ErrUnmatchedOpenParen, &pos)
	default:
		s.failUnmatched(ErrUnmatchedCloseParen, nil)
	}
}

// failUnmatched raises a genuinely mismatched or orphaned close-paren.
// Smart Mode's only leniency for a close-paren is the narrow leading-
// trail carve-out onLeadingCloseParen owns directly; a mismatch found
// here, anywhere else in the line, is always a real error in both
// modes.
func (s *scanState) failUnmatched(name ErrorName, extra *Cursor) {
	switch s.mode {
	case modeParen:
		s.raiseFatal(name, Cursor{X: s.inputX, LineNo: s.inputLineNo}, extra)
	case modeIndent:
		s.cacheError(name, Cursor{X: s.inputX, LineNo: s.inputLineNo}, extra)
		s.ch = ""
	}
}

func (s *scanState) onQuote() {
	if s.isInComment {
		s.quoteDanger = !s.quoteDanger
		if s.quoteDanger {
			s.quoteDangerPos = Cursor{X: s.inputX, LineNo: s.inputLineNo}
		}
		return
	}
	s.isInStr = !s.isInStr
	if s.isInStr {
		s.openQuotePos = Cursor{X: s.inputX, LineNo: s.inputLineNo}
	}
}

func (s *scanState) onSemicolon() {
	s.isInComment = true
	s.quoteDanger = false
	for _, o := range s.stack {
		o.argState = argDone
	}
}

func (s *scanState) onNewlineChar() {
	s.isInComment = false
	s.ch = ""
}

// finishScan runs the end-of-input checks: Paren Mode fails on any
// opener still open; Indent Mode closes the remainder automatically.
// Quote errors are checked first, before the parens are balanced; any
// error Indent Mode deferred during the scan is checked last.
func (s *scanState) finishScan() {
	if s.quoteDanger {
		s.raiseFatal(ErrQuoteDanger, s.quoteDangerPos, nil)
		return
	}
	if s.isInStr {
		s.raiseFatal(ErrUnclosedQuote, s.openQuotePos, nil)
		return
	}
	switch s.mode {
	case modeParen:
		if len(s.stack) > 0 {
			pos := s.stack[0].Position()
			s.raiseFatal(ErrUnclosedParen, pos, &pos)
			return
		}
	case modeIndent:
		s.correctParenTrail(0)
	}
	s.flushTrail()
	if s.cachedError != nil {
		s.err = s.cachedError
		return
	}
	s.success = true
}
