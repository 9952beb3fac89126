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

// Package parinfer infers the close-parens of Lisp-family source text
// from its indentation, or infers its indentation from its close-parens.
//
// The package exposes three transformations: [IndentMode] treats
// indentation as the source of truth and rewrites paren trails to match;
// [ParenMode] treats parens as the source of truth and rewrites
// indentation to match; [SmartMode] is [IndentMode] with cursor-aware
// recovery, falling back to a whole-document [ParenMode] retry when a
// leading close-paren or a released cursor hold makes indentation alone
// ambiguous.
//
// Each function takes the full text of a buffer and an [Options]
// describing the surrounding editor state (cursor position, pending
// changes) and returns a [Result] holding either the rewritten text or a
// structured [Error] describing what went wrong and where.
package parinfer
