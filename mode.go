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

import "strconv"

// scanMode selects which side of the text a run of the engine treats as
// the source of truth. The three public entry points all drive the same
// scanner with a (scanMode, smart) pair rather than each having their own
// copy of the character dispatch and indent-hook logic.
type scanMode int8

const (
	modeIndent scanMode = 1 + iota
	modeParen
)

func (m scanMode) String() string {
	m -= 1
	if m < 0 || int(m) >= len(_scanMode_index)-1 {
		return "scanMode(" + strconv.FormatInt(int64(m+1), 10) + ")"
	}
	return _scanMode_name[_scanMode_index[m]:_scanMode_index[m+1]]
}

const _scanMode_name = "modeIndentmodeParen"

var _scanMode_index = [...]uint8{0, 10, 19}
