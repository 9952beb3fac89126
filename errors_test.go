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

import "testing"

func TestErrorNameString(t *testing.T) {
	tests := []struct {
		name ErrorName
		want string
	}{
		{ErrQuoteDanger, "quote-danger"},
		{ErrEOLBackslash, "eol-backslash"},
		{ErrUnclosedQuote, "unclosed-quote"},
		{ErrUnclosedParen, "unclosed-paren"},
		{ErrUnmatchedCloseParen, "unmatched-close-paren"},
		{ErrUnmatchedOpenParen, "unmatched-open-paren"},
		{ErrLeadingCloseParen, "leading-close-paren"},
		{ErrUnhandled, "unhandled"},
		{ErrorName(0), "unhandled"},
		{ErrorName(200), "unhandled"},
	}
	for _, test := range tests {
		if got := test.name.String(); got != test.want {
			t.Errorf("ErrorName(%d).String() = %q; want %q", test.name, got, test.want)
		}
	}
}

func TestErrorError(t *testing.T) {
	e := newError(ErrUnmatchedCloseParen, 3, 7, nil)
	want := "unmatched-close-paren at line 3, column 7: Unmatched close-paren."
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestCacheErrorKeepsFirst(t *testing.T) {
	s := &scanState{}
	s.cacheError(ErrLeadingCloseParen, Cursor{LineNo: 0, X: 0}, nil)
	s.cacheError(ErrUnclosedQuote, Cursor{LineNo: 1, X: 1}, nil)
	if s.cachedError == nil {
		t.Fatal("cachedError = nil; want set")
	}
	if s.cachedError.Name != ErrLeadingCloseParen {
		t.Errorf("cachedError.Name = %v; want %v", s.cachedError.Name, ErrLeadingCloseParen)
	}
}
