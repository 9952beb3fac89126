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

import (
	"strings"

	"go4.org/bytereplacer"
)

// tabExpander rewrites a code TAB into two spaces, the same fixed-table
// shape the teacher's internal/normhtml escaper uses for HTML entities.
var tabExpander = bytereplacer.New("\t", "  ")

// crlfExpander restores "\r\n" line endings on output that was assembled
// with plain "\n" separators, for input that used CRLF anywhere.
var crlfExpander = bytereplacer.New("\n", "\r\n")

// splitLines splits text on bare LF or CRLF boundaries, stripping the
// terminators, and reports whether any CR was seen.
func splitLines(text string) (lines []string, hasCR bool) {
	hasCR = strings.Contains(text, "\r")
	i := 0
	for {
		j := strings.IndexByte(text[i:], '\n')
		if j < 0 {
			lines = append(lines, text[i:])
			return lines, hasCR
		}
		eol := i + j
		lines = append(lines, strings.TrimSuffix(text[i:eol], "\r"))
		i = eol + 1
	}
}

func isIndentWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

func isTrailWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isCloseParenRune(ch rune) bool {
	return ch == ')' || ch == ']' || ch == '}'
}

func isOpenParenRune(ch rune) bool {
	return ch == '(' || ch == '[' || ch == '{'
}
