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
	"strings"

	"github.com/walteh/textan/pkg/stats"
	"github.com/walteh/textan/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrBlankInput is returned when there is no text to work on
	ErrBlankInput = errors.Base("please enter some text to analyze")

	// ErrMissingTerms is returned when a replace is requested without a search term or replacement
	ErrMissingTerms = errors.Base("please enter both search and replace words")
)

// 📝 Session holds the editing state of one user
//
// The zero value is an empty session. A Session is not safe for concurrent use.
type Session struct {
	Input       string `json:"input"`
	SearchTerm  string `json:"search_term"`
	Replacement string `json:"replacement"`
	Modified    string `json:"modified"`

	// ReplacementSet marks an empty Replacement as intended (deletion).
	// A non-empty Replacement needs no flag.
	ReplacementSet bool `json:"replacement_set,omitempty"`
}

// 🏭 New creates a session over input
func New(input string) *Session {
	return &Session{Input: input}
}

// SetTerms records the search and replacement terms for the next Replace
func (s *Session) SetTerms(search, replacement string) {
	s.SearchTerm = search
	s.Replacement = replacement
	s.ReplacementSet = true
}

// 📊 Analyze computes statistics over the current input
func (s *Session) Analyze() (stats.Report, error) {
	if strings.TrimSpace(s.Input) == "" {
		return stats.Report{}, errors.WithStack(ErrBlankInput)
	}
	return stats.Compute(s.Input), nil
}

// 🔄 Replace runs the engine against the current input with the stored terms
//
// On a match the modified text is kept and the terms are cleared; otherwise the
// modified text is cleared and the input is left untouched.
func (s *Session) Replace(r text.Replacer, caseSensitive, replaceAll bool) (text.ReplaceResult, error) {
	if strings.TrimSpace(s.Input) == "" {
		return text.ReplaceResult{}, errors.WithStack(ErrBlankInput)
	}

	req := text.ReplaceRequest{
		SearchTerm:    s.SearchTerm,
		Replacement:   s.Replacement,
		CaseSensitive: caseSensitive,
		ReplaceAll:    replaceAll,
	}
	if err := r.ValidateRequest(req); err != nil || !s.hasReplacement() {
		return text.ReplaceResult{}, errors.WithStack(ErrMissingTerms)
	}

	res := r.SearchAndReplace(s.Input, req)
	if !res.Matched {
		s.Modified = ""
		return res, nil
	}

	s.Modified = res.ModifiedText
	s.clearTerms()
	return res, nil
}

// ⬆️ Promote moves the modified text into the input. It reports false when there is nothing to promote.
func (s *Session) Promote() bool {
	if s.Modified == "" {
		return false
	}
	s.Input = s.Modified
	s.Modified = ""
	s.clearTerms()
	return true
}

func (s *Session) hasReplacement() bool {
	return s.ReplacementSet || s.Replacement != ""
}

func (s *Session) clearTerms() {
	s.SearchTerm = ""
	s.Replacement = ""
	s.ReplacementSet = false
}
