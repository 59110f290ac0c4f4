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

package text

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🔎 ReplaceRequest describes a single search-and-replace run
type ReplaceRequest struct {
	// SearchTerm is the literal text to look for
	SearchTerm string `json:"search_term" yaml:"search_term"`

	// Replacement is inserted in place of each substituted occurrence, may be empty
	Replacement string `json:"replacement" yaml:"replacement"`

	// CaseSensitive disables case folding when locating occurrences
	CaseSensitive bool `json:"case_sensitive" yaml:"case_sensitive"`

	// ReplaceAll substitutes every occurrence instead of only the leftmost one
	ReplaceAll bool `json:"replace_all" yaml:"replace_all"`
}

// 📦 ReplaceResult is the outcome of a search-and-replace run
type ReplaceResult struct {
	// ModifiedText is the substituted text, empty when nothing matched
	ModifiedText string `json:"modified_text"`

	// OccurrenceCount is the number of occurrences in the source, even when only the first was replaced
	OccurrenceCount int `json:"occurrence_count"`

	// Matched reports whether the term was found at all
	Matched bool `json:"matched"`
}

// ReplacementRule defines a single text replacement applied in batch mode
type ReplacementRule struct {
	// SearchTerm is the text to replace
	SearchTerm string

	// Replacement is the replacement text
	Replacement string

	// CaseSensitive disables case folding for this rule
	CaseSensitive bool

	// ReplaceFirst limits the rule to the leftmost occurrence
	ReplaceFirst bool

	// FileFilterGlob is a doublestar pattern selecting the files the rule applies to
	FileFilterGlob string
}

// Request converts the rule to an engine request
func (r ReplacementRule) Request() ReplaceRequest {
	return ReplaceRequest{
		SearchTerm:    r.SearchTerm,
		Replacement:   r.Replacement,
		CaseSensitive: r.CaseSensitive,
		ReplaceAll:    !r.ReplaceFirst,
	}
}

// AppliesTo reports whether the rule's glob selects path. An empty glob selects everything.
func (r ReplacementRule) AppliesTo(path string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	return MatchGlob(r.FileFilterGlob, path)
}

// MatchGlob matches a doublestar pattern against an OS path. Absolute paths are
// also tried without their leading slash so that patterns like **/*.md apply.
func MatchGlob(pattern, path string) bool {
	slashed := filepath.ToSlash(path)
	for _, candidate := range []string{slashed, strings.TrimPrefix(slashed, "/")} {
		matched, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return false
		}
		if matched {
			return true
		}
	}
	return false
}

// ReplacementResult contains the results of a batch replacement
type ReplacementResult struct {
	// WasModified indicates if any rule matched
	WasModified bool

	// ReplacementCount is the number of occurrences found across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Replacer defines the search-and-replace contract
type Replacer interface {
	// SearchAndReplace locates and substitutes req.SearchTerm in source
	SearchAndReplace(source string, req ReplaceRequest) ReplaceResult

	// ValidateRequest performs the checks callers run before SearchAndReplace
	ValidateRequest(req ReplaceRequest) error

	// ReplaceText applies a set of rules to the content in order
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
