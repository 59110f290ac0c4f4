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
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/textan/pkg/config"
	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work applied to every selected file
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Patterns are the user supplied file patterns
	Patterns() []string
	// Targets expands the patterns into the files to process
	Targets(ctx context.Context) ([]string, error)
	// ProcessFile handles one file; failures are reported in the result
	ProcessFile(ctx context.Context, path string) report.FileResult
}

// 🔧 Options contains configuration shared by all operations
type Options struct {
	// Config supplies ignore patterns and replacement rules
	Config *config.Config
	// Replacer is the engine used by replace operations
	Replacer text.Replacer
}

// 🧱 BaseOperation implements the file selection shared by operations
type BaseOperation struct {
	Options
	patterns []string
}

// 🏗️ NewBaseOperation creates a base operation over patterns
func NewBaseOperation(opts Options, patterns []string) BaseOperation {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewEngine()
	}
	return BaseOperation{
		Options:  opts,
		patterns: patterns,
	}
}

// Patterns implements Operation.Patterns
func (op *BaseOperation) Patterns() []string {
	return op.patterns
}

// 🔍 Targets implements Operation.Targets
//
// Each pattern is expanded with doublestar; directories are skipped and the
// result is de-duplicated and sorted.
func (op *BaseOperation) Targets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range op.patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			logger.Debug().Str("pattern", pattern).Msg("pattern matched no files")
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			if op.shouldIgnore(ctx, m) {
				continue
			}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func (op *BaseOperation) shouldIgnore(ctx context.Context, path string) bool {
	logger := zerolog.Ctx(ctx)
	for _, pattern := range op.Config.Ignore {
		if text.MatchGlob(pattern, path) {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
