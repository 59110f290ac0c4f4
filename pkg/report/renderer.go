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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/walteh/textan/pkg/session"
	"github.com/walteh/textan/pkg/stats"
	"github.com/walteh/textan/pkg/text"
	"github.com/walteh/textan/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// 🖨️ Renderer writes command results in a specific output format
type Renderer interface {
	Stats(w io.Writer, r stats.Report, hits []transform.TermHit) error
	Replace(w io.Writer, term string, res text.ReplaceResult, cmp *session.Comparison) error
	Transform(w io.Writer, mode transform.Mode, out string) error
	Files(w io.Writer, files []FileResult) error
}

// NewRenderer returns the renderer for format ("text" or "json")
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TextRenderer{}, nil
	case "json":
		return &JSONRenderer{Indent: "  "}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// TextRenderer renders tables and coloured summaries for terminals
type TextRenderer struct{}

func (r *TextRenderer) Stats(w io.Writer, rep stats.Report, hits []transform.TermHit) error {
	if _, err := fmt.Fprintln(w, StatsTable(rep)); err != nil {
		return errors.Errorf("writing stats: %w", err)
	}
	for _, hit := range hits {
		line := color.GreenString("✓ %s", TermSummary(hit))
		if !hit.Found {
			line = color.YellowString("• %s", TermSummary(hit))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Errorf("writing term check: %w", err)
		}
	}
	return nil
}

func (r *TextRenderer) Replace(w io.Writer, term string, res text.ReplaceResult, cmp *session.Comparison) error {
	if !res.Matched {
		_, err := fmt.Fprintln(w, color.RedString("❌ %s", ReplaceSummary(term, res)))
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintln(w, color.GreenString("✅ %s", ReplaceSummary(term, res))); err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintln(w, res.ModifiedText); err != nil {
		return errors.WithStack(err)
	}
	if cmp != nil && !cmp.Changed() {
		_, err := fmt.Fprintf(w, "\n%s\n", color.New(color.Faint).Sprint("diff: no changes"))
		return errors.WithStack(err)
	}
	if cmp != nil {
		_, err := fmt.Fprintf(w, "\n%s\n%s\n",
			color.New(color.Faint).Sprintf("diff: +%d -%d", cmp.Insertions, cmp.Deletions),
			cmp.Pretty())
		return errors.WithStack(err)
	}
	return nil
}

func (r *TextRenderer) Transform(w io.Writer, mode transform.Mode, out string) error {
	_, err := fmt.Fprintln(w, out)
	return errors.WithStack(err)
}

func (r *TextRenderer) Files(w io.Writer, files []FileResult) error {
	_, err := fmt.Fprintln(w, FilesTable(files))
	return errors.WithStack(err)
}

// JSONRenderer renders machine readable documents, one per call
type JSONRenderer struct {
	Indent string
}

func (r *JSONRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(v); err != nil {
		return errors.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func (r *JSONRenderer) Stats(w io.Writer, rep stats.Report, hits []transform.TermHit) error {
	return r.encode(w, struct {
		stats.Report
		Terms []transform.TermHit `json:"terms,omitempty"`
	}{rep, hits})
}

func (r *JSONRenderer) Replace(w io.Writer, term string, res text.ReplaceResult, cmp *session.Comparison) error {
	return r.encode(w, struct {
		SearchTerm string `json:"search_term"`
		text.ReplaceResult
		Comparison *session.Comparison `json:"comparison,omitempty"`
	}{term, res, cmp})
}

func (r *JSONRenderer) Transform(w io.Writer, mode transform.Mode, out string) error {
	return r.encode(w, struct {
		Mode   transform.Mode `json:"mode"`
		Output string         `json:"output"`
	}{mode, out})
}

func (r *JSONRenderer) Files(w io.Writer, files []FileResult) error {
	return r.encode(w, files)
}
