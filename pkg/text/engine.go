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
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrEmptySearchTerm is returned by the validators when no search term was given
var ErrEmptySearchTerm = errors.Base("search term is required")

// 🔧 Engine implements Replacer with literal matching and optional case folding
type Engine struct{}

var _ Replacer = (*Engine)(nil)

// 🏭 NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{}
}

// SearchAndReplace runs req against source with a zero-value Engine
func SearchAndReplace(source string, req ReplaceRequest) ReplaceResult {
	return (&Engine{}).SearchAndReplace(source, req)
}

// 🔎 SearchAndReplace implements Replacer.SearchAndReplace
//
// Occurrences are counted left to right without overlap in the comparison text,
// which is lower-cased when the request is case-insensitive. The count always
// covers every occurrence, including when only the first one is substituted.
func (e *Engine) SearchAndReplace(source string, req ReplaceRequest) ReplaceResult {
	if req.SearchTerm == "" {
		return ReplaceResult{}
	}

	haystack, needle := source, req.SearchTerm
	if !req.CaseSensitive {
		haystack = strings.ToLower(source)
		needle = strings.ToLower(req.SearchTerm)
	}

	count := strings.Count(haystack, needle)
	if count == 0 {
		return ReplaceResult{}
	}

	limit := -1
	if !req.ReplaceAll {
		limit = 1
	}

	var modified string
	if req.CaseSensitive {
		modified = strings.Replace(source, req.SearchTerm, req.Replacement, limit)
	} else {
		modified = replaceFold(source, req.SearchTerm, req.Replacement, limit)
	}

	return ReplaceResult{
		ModifiedText:    modified,
		OccurrenceCount: count,
		Matched:         true,
	}
}

// replaceFold substitutes term case-insensitively. The term is escaped before
// compiling so it is always matched literally; the replacement is never expanded.
func replaceFold(source, term, replacement string, limit int) string {
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		// only reachable for invalid UTF-8 in term
		return strings.Replace(source, term, replacement, limit)
	}

	if limit < 0 {
		return pattern.ReplaceAllLiteralString(source, replacement)
	}

	loc := pattern.FindStringIndex(source)
	if loc == nil {
		return source
	}
	return source[:loc[0]] + replacement + source[loc[1]:]
}

// ValidateRequest implements Replacer.ValidateRequest
//
// Only an empty term is rejected; whitespace is a valid term.
func (e *Engine) ValidateRequest(req ReplaceRequest) error {
	if req.SearchTerm == "" {
		return errors.WithStack(ErrEmptySearchTerm)
	}
	return nil
}

// 📝 ReplaceText implements Replacer.ReplaceText
func (e *Engine) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	current := string(originalContent)
	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying rule %d: %w", i, err)
		}

		// Skip empty rules
		if rule.SearchTerm == "" {
			continue
		}

		res := e.SearchAndReplace(current, rule.Request())
		logger.Trace().
			Int("rule", i).
			Str("search_term", rule.SearchTerm).
			Int("occurrences", res.OccurrenceCount).
			Msg("applied replacement rule")

		if !res.Matched {
			continue
		}

		result.WasModified = true
		result.ReplacementCount += res.OccurrenceCount
		current = res.ModifiedText
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules
func (e *Engine) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.SearchTerm == "" {
			return errors.Errorf("rule %d: search term is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file filter glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
