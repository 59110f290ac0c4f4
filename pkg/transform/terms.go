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

package transform

import "strings"

// DefaultWatchTerms are checked when no watch terms are configured
var DefaultWatchTerms = []string{"python"}

// 🎯 TermHit records whether a watch term appears in the text
type TermHit struct {
	Term  string `json:"term"`
	Found bool   `json:"found"`
}

// ContainsTerm reports whether term appears in text, ignoring case
func ContainsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(Lower(text), Lower(term))
}

// FindTerms checks each term against text. Blank terms are dropped.
func FindTerms(text string, terms []string) []TermHit {
	folded := Lower(text)
	hits := make([]TermHit, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		hits = append(hits, TermHit{
			Term:  term,
			Found: strings.Contains(folded, Lower(term)),
		})
	}
	return hits
}
