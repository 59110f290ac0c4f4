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

package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔄 NewReplaceOperation creates an operation applying the configured rules to each file
//
// Files are only rewritten when write is true and at least one rule matched.
func NewReplaceOperation(opts Options, patterns []string, write bool) Operation {
	return &replaceOperation{
		BaseOperation: NewBaseOperation(opts, patterns),
		write:         write,
	}
}

type replaceOperation struct {
	BaseOperation
	write bool
}

func (op *replaceOperation) Name() string {
	if op.write {
		return "replace"
	}
	return "replace (dry run)"
}

// Validate checks the configured rules before any file is touched
func (op *replaceOperation) Validate() error {
	rules := op.Config.ReplacementRules()
	if len(rules) == 0 {
		return errors.Errorf("no replacement rules configured")
	}
	if err := op.Replacer.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}
	return nil
}

// 🏃 ProcessFile applies the matching rules to one file
func (op *replaceOperation) ProcessFile(ctx context.Context, path string) report.FileResult {
	logger := zerolog.Ctx(ctx)
	result := report.FileResult{Path: path, Replaced: true}

	var rules []text.ReplacementRule
	for _, rule := range op.Config.ReplacementRules() {
		if rule.AppliesTo(path) {
			rules = append(rules, rule)
		}
	}
	if len(rules) == 0 {
		logger.Debug().Str("file", path).Msg("no rule applies to file")
		return result
	}

	data, err := readFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	res, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(data), rules)
	if err != nil {
		result.Error = errors.Errorf("replacing text: %w", err).Error()
		return result
	}

	result.Occurrences = res.ReplacementCount
	result.Modified = res.WasModified && !bytes.Equal(res.OriginalContent, res.ModifiedContent)

	if !op.write || !result.Modified {
		return result
	}

	if err := writeFile(path, res.ModifiedContent); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Written = true
	return result
}

// writeFile replaces the content of path, keeping its permissions
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}
