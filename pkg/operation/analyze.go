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

	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/stats"
)

// 📊 NewAnalyzeOperation creates an operation computing statistics for each file
func NewAnalyzeOperation(opts Options, patterns []string) Operation {
	return &analyzeOperation{
		BaseOperation: NewBaseOperation(opts, patterns),
	}
}

type analyzeOperation struct {
	BaseOperation
}

func (op *analyzeOperation) Name() string {
	return "analyze"
}

// 🏃 ProcessFile computes the statistics of one file
func (op *analyzeOperation) ProcessFile(ctx context.Context, path string) report.FileResult {
	result := report.FileResult{Path: path}

	data, err := readFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	rep := stats.Compute(string(data))
	result.Stats = &rep
	return result
}
