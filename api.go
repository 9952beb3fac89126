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

// IndentMode infers close-parens from indentation: edits to the
// structure (adding or removing indentation) are reflected in the
// parens.
func IndentMode(text string, opts Options) Result {
	return run(text, modeIndent, false, opts)
}

// ParenMode infers indentation from the existing parens: it rewrites the
// whitespace in front of a line and between trailing close-parens, and
// moves a close-paren only when it leads a line, appending it to the
// pending trail of the line before.
func ParenMode(text string, opts Options) Result {
	return run(text, modeParen, false, opts)
}

// SmartMode runs Indent Mode with cursor-aware recovery: a leading
// close-paren or a release of the cursor's hold on a trail triggers a
// single whole-document retry under Paren Mode rather than failing.
// When opts.SelectionStartLine is set, it defers to Paren Mode directly,
// since an active selection means the user is editing structure
// deliberately and Indent Mode's inference would fight them.
func SmartMode(text string, opts Options) Result {
	if opts.SelectionStartLine != nil {
		return run(text, modeParen, false, opts)
	}
	return run(text, modeIndent, true, opts)
}

func run(text string, mode scanMode, smart bool, opts Options) Result {
	s := newScanState(text, mode, smart, opts)
	s.scan()
	if s.retry != retryNone {
		retry := newScanState(text, modeParen, smart, opts)
		retry.scan()
		return retry.finalize(text)
	}
	return s.finalize(text)
}
