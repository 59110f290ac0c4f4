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

package report

import (
	"github.com/walteh/textan/pkg/stats"
)

// 📄 FileResult is the outcome of processing one file in a batch
type FileResult struct {
	Path        string        `json:"path"`
	Stats       *stats.Report `json:"stats,omitempty"`
	Replaced    bool          `json:"replaced,omitempty"`
	Occurrences int           `json:"occurrences,omitempty"`
	Modified    bool          `json:"modified,omitempty"`
	Written     bool          `json:"written,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// Status is a short human readable state of the file
func (f FileResult) Status() string {
	switch {
	case f.Error != "":
		return "error"
	case f.Written:
		return "written"
	case f.Modified:
		return "would change"
	case f.Replaced:
		return "no match"
	default:
		return "ok"
	}
}
