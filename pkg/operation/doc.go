// Package operation runs text analysis and replacement over sets of files.
//
//	+-------------+
//	|  Operation  |
//	|  (Targets)  |
//	+------+------+
//	       |
//	+------+------+
//	|   Runner    |
//	| (sync/pool) |
//	+------+------+
//	       |
//	+------+------+
//	|   Results   |
//	|  (report)   |
//	+-------------+
//
// 🎯 Purpose:
// - Expands doublestar patterns into the files to process
// - Computes statistics or applies configured replacement rules per file
// - Runs files sequentially or on a bounded errgroup pool
//
// 🔄 Flow:
// 1. Runner validates the operation (rules, when it has any)
// 2. Operation expands patterns, dropping ignored files
// 3. Each file is processed; per-file failures are kept in the result
// 4. Results come back in the order of the sorted targets
//
// 🔍 Example:
//
//	runner := operation.NewRunner(&logger, console, cfg.Workers > 1, cfg.Workers)
//	op := operation.NewReplaceOperation(operation.Options{Config: cfg}, []string{"docs/**/*.md"}, false)
//	results, err := runner.Run(ctx, op)
package operation
