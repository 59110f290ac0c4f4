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
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	ptext "github.com/jedib0t/go-pretty/v6/text"
	"github.com/walteh/textan/pkg/stats"
	"github.com/walteh/textan/pkg/text"
	"github.com/walteh/textan/pkg/transform"
)

// 📊 StatsTable renders a report as a rounded table
func StatsTable(r stats.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Words", strconv.Itoa(r.WordCount)},
		{"Characters", strconv.Itoa(r.CharCount)},
		{"Vowels", strconv.Itoa(r.VowelCount)},
		{"Avg Word Length", r.AvgWordLengthString()},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: ptext.AlignRight, AlignHeader: ptext.AlignLeft},
	})
	return tw.Render()
}

// FilesTable renders one row per processed file
func FilesTable(files []FileResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Words", "Chars", "Vowels", "Avg", "Occurrences", "Status"})
	for _, f := range files {
		row := table.Row{f.Path, "", "", "", "", "", f.Status()}
		if f.Stats != nil {
			row[1] = strconv.Itoa(f.Stats.WordCount)
			row[2] = strconv.Itoa(f.Stats.CharCount)
			row[3] = strconv.Itoa(f.Stats.VowelCount)
			row[4] = f.Stats.AvgWordLengthString()
		}
		if f.Replaced {
			row[5] = strconv.Itoa(f.Occurrences)
		}
		tw.AppendRow(row)
	}
	configs := make([]table.ColumnConfig, 0, 5)
	for i := 2; i <= 6; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: ptext.AlignRight, AlignHeader: ptext.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// 🔄 ReplaceSummary describes a search-and-replace outcome in one line
func ReplaceSummary(term string, res text.ReplaceResult) string {
	if !res.Matched {
		return fmt.Sprintf("'%s' not found in the text!", term)
	}
	plural := ""
	if res.OccurrenceCount > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Text modified successfully! Found %d occurrence%s.", res.OccurrenceCount, plural)
}

// TermSummary describes a watch term check in one line
func TermSummary(hit transform.TermHit) string {
	if hit.Found {
		return fmt.Sprintf("Found '%s' in the text!", hit.Term)
	}
	return fmt.Sprintf("No '%s' reference found.", hit.Term)
}

// FormatProgress formats a progress message with percentage
func FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}
