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

import (
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 🔠 Mode selects a case transformation
type Mode string

const (
	ModeUpper Mode = "upper"
	ModeLower Mode = "lower"
	ModeTitle Mode = "title"
)

// Modes lists every supported mode in display order
var Modes = []Mode{ModeUpper, ModeLower, ModeTitle}

// ParseMode resolves a user supplied mode name
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown transform mode %q", s)
}

// Upper returns text with every letter mapped to upper case
func Upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// Lower returns text with every letter mapped to lower case
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Title returns text with the first letter of each word in upper case
func Title(text string) string {
	return cases.Title(language.Und).String(text)
}

// 🔄 Apply runs the transformation selected by mode
func Apply(mode Mode, text string) (string, error) {
	switch mode {
	case ModeUpper:
		return Upper(text), nil
	case ModeLower:
		return Lower(text), nil
	case ModeTitle:
		return Title(text), nil
	default:
		return "", errors.Errorf("unknown transform mode %q", mode)
	}
}
