// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🆚 Comparison pairs the original input with the modified text
type Comparison struct {
	Original   string                `json:"original"`
	Modified   string                `json:"modified"`
	Insertions int                   `json:"insertions"`
	Deletions  int                   `json:"deletions"`
	Diffs      []diffmatchpatch.Diff `json:"-"`
}

// Compare diffs the input against the modified text
func (s *Session) Compare() Comparison {
	return Diff(s.Input, s.Modified)
}

// Diff computes a semantic character diff between original and modified
func Diff(original, modified string) Comparison {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, modified, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	cmp := Comparison{
		Original: original,
		Modified: modified,
		Diffs:    diffs,
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			cmp.Insertions += len([]rune(d.Text))
		case diffmatchpatch.DiffDelete:
			cmp.Deletions += len([]rune(d.Text))
		}
	}
	return cmp
}

// Changed reports whether the two sides differ
func (c Comparison) Changed() bool {
	return c.Insertions > 0 || c.Deletions > 0
}

// Pretty renders the diff with ANSI colours
func (c Comparison) Pretty() string {
	return diffmatchpatch.New().DiffPrettyText(c.Diffs)
}
