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

func TestScanModeString(t *testing.T) {
	tests := []struct {
		mode scanMode
		want string
	}{
		{modeIndent, "modeIndent"},
		{modeParen, "modeParen"},
		{scanMode(0), "scanMode(0)"},
		{scanMode(3), "scanMode(3)"},
	}
	for _, test := range tests {
		if got := test.mode.String(); got != test.want {
			t.Errorf("scanMode(%d).String() = %q; want %q", test.mode, got, test.want)
		}
	}
}
