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

// Package stats derives word, character and vowel counts from text.
package stats

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 📊 Report holds the statistics derived from a piece of text
type Report struct {
	WordCount     int     `json:"word_count"`
	CharCount     int     `json:"char_count"`
	VowelCount    int     `json:"vowel_count"`
	AvgWordLength float64 `json:"avg_word_length"`
}

// Tokens splits text into maximal runs of non-whitespace characters
func Tokens(text string) []string {
	return strings.Fields(text)
}

// 🧮 Compute derives a Report from text. Lengths are counted in code points.
func Compute(text string) Report {
	words := Tokens(text)

	report := Report{
		WordCount:  len(words),
		CharCount:  utf8.RuneCountInString(text),
		VowelCount: countVowels(text),
	}

	if len(words) == 0 {
		return report
	}

	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	report.AvgWordLength = float64(total) / float64(len(words))

	return report
}

func countVowels(text string) int {
	n := 0
	for _, r := range text {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	return n
}

// AvgWordLengthString formats the average with two decimals
func (r Report) AvgWordLengthString() string {
	return fmt.Sprintf("%.2f", r.AvgWordLength)
}
