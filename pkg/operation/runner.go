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
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/textan/pkg/log"
	"github.com/walteh/textan/pkg/report"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// validator is implemented by operations that can check their inputs up front
type validator interface {
	Validate() error
}

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger  *zerolog.Logger
	console *log.Logger
	async   bool
	workers int
}

// 🏗️ NewRunner creates a new runner. Async runs use up to workers goroutines.
func NewRunner(logger *zerolog.Logger, console *log.Logger, async bool, workers int) *OperationRunner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OperationRunner{
		logger:  logger,
		console: console,
		async:   async,
		workers: workers,
	}
}

// 🏃 Run executes an operation and returns one result per target, in target order
func (r *OperationRunner) Run(ctx context.Context, op Operation) ([]report.FileResult, error) {
	if v, ok := op.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, errors.Errorf("%s: %w", op.Name(), err)
		}
	}

	// every log line of one run carries the same run_id
	runLogger := r.logger.With().Str("run_id", uuid.NewString()).Str("operation", op.Name()).Logger()
	ctx = runLogger.WithContext(ctx)

	files, err := op.Targets(ctx)
	if err != nil {
		return nil, errors.Errorf("selecting files: %w", err)
	}

	runLogger.Debug().Int("files", len(files)).Bool("async", r.async).Msg("running operation")

	if r.console != nil {
		r.console.StartBatch(ctx, log.BatchOperation{Name: op.Name(), Patterns: op.Patterns(), Files: len(files)})
		defer r.console.EndBatch(ctx)
	}

	results := make([]report.FileResult, len(files))
	if r.async {
		err = r.runAsync(ctx, op, files, results)
	} else {
		err = r.runSync(ctx, op, files, results)
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

// 🔄 runSync processes files one after another
func (r *OperationRunner) runSync(ctx context.Context, op Operation, files []string, results []report.FileResult) error {
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		results[i] = op.ProcessFile(ctx, file)
		r.logResult(ctx, op, results[i], i+1, len(files))
	}
	return nil
}

// ⚡ runAsync processes files on a bounded pool of goroutines
func (r *OperationRunner) runAsync(ctx context.Context, op Operation, files []string, results []report.FileResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	var mu sync.Mutex
	done := 0
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			results[i] = op.ProcessFile(gctx, file)

			mu.Lock()
			done++
			current := done
			mu.Unlock()

			r.logResult(gctx, op, results[i], current, len(files))
			return nil
		})
	}
	return g.Wait()
}

func (r *OperationRunner) logResult(ctx context.Context, op Operation, res report.FileResult, current, total int) {
	zerolog.Ctx(ctx).Debug().Str("file", res.Path).Str("status", res.Status()).Msg(report.FormatProgress(current, total))

	if r.console == nil {
		return
	}

	fo := log.FileOperation{
		Path:        res.Path,
		Kind:        "analyze",
		Status:      res.Status(),
		IsModified:  res.Modified,
		IsWritten:   res.Written,
		Failed:      res.Error != "",
		Occurrences: res.Occurrences,
	}
	if res.Replaced {
		fo.Kind = "replace"
		fo.IsSkipped = !res.Modified && res.Error == ""
		if res.Occurrences > 0 {
			fo.Status = fmt.Sprintf("%s (%d)", res.Status(), res.Occurrences)
		}
	}
	if res.Stats != nil {
		fo.Words = res.Stats.WordCount
		fo.Status = fmt.Sprintf("%d words", res.Stats.WordCount)
	}
	r.console.LogFileOperation(ctx, fo)
}
