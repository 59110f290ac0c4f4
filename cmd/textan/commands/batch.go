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

package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/log"
	"github.com/walteh/textan/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd(o *opts.RootOpts) *cobra.Command {
	var async bool

	cmd := &cobra.Command{
		Use:   "analyze PATTERN...",
		Short: "Compute statistics for every file matching the patterns",
		Long: `Analyze expands doublestar patterns (e.g. docs/**/*.md), skips files matching
the configured ignore patterns and reports statistics per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := operation.NewAnalyzeOperation(operation.Options{
				Config:   o.Config,
				Replacer: o.Replacer,
			}, args)
			return runBatch(cmd, o, op, async)
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "process files concurrently using the configured workers")
	return cmd
}

// NewApplyCmd creates the apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	var (
		async bool
		write bool
	)

	cmd := &cobra.Command{
		Use:   "apply PATTERN...",
		Short: "Apply the configured replacement rules to matching files",
		Long: `Apply runs every rule from the config file against each matching file.
It will:
1. Validate the configured rules
2. Select rules whose files pattern matches each file
3. Report occurrences per file
4. Rewrite changed files only when --write is given`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := operation.NewReplaceOperation(operation.Options{
				Config:   o.Config,
				Replacer: o.Replacer,
			}, args, write)
			return runBatch(cmd, o, op, async)
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "process files concurrently using the configured workers")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write changes back to the files")
	return cmd
}

func runBatch(cmd *cobra.Command, o *opts.RootOpts, op operation.Operation, async bool) error {
	ctx := cmd.Context()
	console := log.FromContext(ctx)

	console.Header(op.Name())

	runner := operation.NewRunner(zerolog.Ctx(ctx), console, async, o.Config.Workers)
	results, err := runner.Run(ctx, op)
	if err != nil {
		return errors.Errorf("running %s: %w", op.Name(), err)
	}

	if len(results) == 0 {
		o.UserLogger.LogValidation(false, "No files matched the given patterns.", nil)
		return nil
	}

	if err := o.Renderer.Files(cmd.OutOrStdout(), results); err != nil {
		return errors.Errorf("rendering results: %w", err)
	}

	console.LogNewline()

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			console.Print(fmt.Sprintf("  %s: %s", r.Path, r.Error))
		}
	}
	if failed > 0 {
		console.Errorf("%d of %d files failed", failed, len(results))
		return errors.Errorf("%d of %d files failed", failed, len(results))
	}

	console.Successf("%s finished • %d files", op.Name(), len(results))
	return nil
}
