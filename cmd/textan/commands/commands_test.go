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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/config"
	"github.com/walteh/textan/pkg/log"
	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/session"
	"github.com/walteh/textan/pkg/text"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func newTestOpts(t *testing.T, cfg *config.Config) (*opts.RootOpts, context.Context) {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(io.Discard, zerolog.Disabled))
	if cfg == nil {
		cfg = config.Default()
	}
	return &opts.RootOpts{
		Config:     cfg,
		Renderer:   &report.JSONRenderer{},
		Replacer:   text.NewEngine(),
		UserLogger: log.NewUserLogger(ctx),
	}, ctx
}

func execute(ctx context.Context, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

type replaceOutput struct {
	SearchTerm      string         `json:"search_term"`
	ModifiedText    string         `json:"modified_text"`
	OccurrenceCount int            `json:"occurrence_count"`
	Matched         bool           `json:"matched"`
	Comparison      map[string]any `json:"comparison"`
}

func TestStatsCmd(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantWords int
		wantChars int
		wantVow   int
		wantAvg   float64
		wantFound bool
		wantErr   error
	}{
		{
			name:      "text_flag",
			args:      []string{"--text", "Hello World"},
			wantWords: 2,
			wantChars: 11,
			wantVow:   3,
			wantAvg:   5,
		},
		{
			name:      "stdin_dash",
			stdin:     "I like Python",
			args:      []string{"-"},
			wantWords: 3,
			wantChars: 13,
			wantVow:   4,
			wantAvg:   11.0 / 3.0,
			wantFound: true,
		},
		{
			name:    "blank_input",
			stdin:   "   \n",
			wantErr: session.ErrBlankInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ctx := newTestOpts(t, nil)
			out, err := execute(ctx, NewStatsCmd(o), tt.stdin, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var got struct {
				WordCount     int     `json:"word_count"`
				CharCount     int     `json:"char_count"`
				VowelCount    int     `json:"vowel_count"`
				AvgWordLength float64 `json:"avg_word_length"`
				Terms         []struct {
					Term  string `json:"term"`
					Found bool   `json:"found"`
				} `json:"terms"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantWords, got.WordCount)
			assert.Equal(t, tt.wantChars, got.CharCount)
			assert.Equal(t, tt.wantVow, got.VowelCount)
			assert.InDelta(t, tt.wantAvg, got.AvgWordLength, 1e-9)
			require.Len(t, got.Terms, 1)
			assert.Equal(t, "python", got.Terms[0].Term)
			assert.Equal(t, tt.wantFound, got.Terms[0].Found)
		})
	}
}

func TestStatsCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two three"), 0o644))

	o, ctx := newTestOpts(t, nil)
	out, err := execute(ctx, NewStatsCmd(o), "", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"word_count":3`)
}

func TestStatsCmd_TextWithFileArg(t *testing.T) {
	o, ctx := newTestOpts(t, nil)
	_, err := execute(ctx, NewStatsCmd(o), "", "--text", "hi", "file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--text cannot be combined")
}

func TestTransformCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "default_upper", args: []string{"--text", "Hello World"}, want: "HELLO WORLD"},
		{name: "lower", args: []string{"--mode", "lower", "--text", "Hello World"}, want: "hello world"},
		{name: "title", args: []string{"-m", "title", "--text", "hello wide world"}, want: "Hello Wide World"},
		{name: "unknown_mode", args: []string{"--mode", "snake", "--text", "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ctx := newTestOpts(t, nil)
			out, err := execute(ctx, NewTransformCmd(o), "", tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got struct {
				Output string `json:"output"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got.Output)
		})
	}
}

func TestReplaceCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantText    string
		wantCount   int
		wantMatched bool
		wantErr     error
	}{
		{
			name:        "case_insensitive_all",
			args:        []string{"--text", "Hello World", "-s", "world", "-r", "Earth"},
			wantText:    "Hello Earth",
			wantCount:   1,
			wantMatched: true,
		},
		{
			name:        "first_reports_total_count",
			args:        []string{"--text", "aaa", "-s", "a", "-r", "b", "--first"},
			wantText:    "baa",
			wantCount:   3,
			wantMatched: true,
		},
		{
			name:        "case_sensitive_no_match",
			args:        []string{"--text", "Hello", "-s", "hello", "-r", "x", "--case-sensitive"},
			wantMatched: false,
		},
		{
			name:        "literal_metacharacters",
			args:        []string{"--text", "a.b axb", "-s", "a.b", "-r", "X"},
			wantText:    "X axb",
			wantCount:   1,
			wantMatched: true,
		},
		{
			name:        "empty_replacement_deletes",
			args:        []string{"--text", "foo bar foo", "-s", "foo ", "-r", ""},
			wantText:    "bar foo",
			wantCount:   1,
			wantMatched: true,
		},
		{
			name:        "whitespace_search_term",
			args:        []string{"--text", "a b c", "-s", " ", "-r", "_"},
			wantText:    "a_b_c",
			wantCount:   2,
			wantMatched: true,
		},
		{
			name:    "missing_replace_flag",
			args:    []string{"--text", "Hello", "-s", "hello"},
			wantErr: session.ErrMissingTerms,
		},
		{
			name:    "missing_search",
			args:    []string{"--text", "Hello", "-r", "x"},
			wantErr: session.ErrMissingTerms,
		},
		{
			name:    "blank_input",
			args:    []string{"--text", " ", "-s", "a", "-r", "b"},
			wantErr: session.ErrBlankInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ctx := newTestOpts(t, nil)
			out, err := execute(ctx, NewReplaceCmd(o), "", tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var got replaceOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.Equal(t, tt.wantText, got.ModifiedText)
			assert.Equal(t, tt.wantCount, got.OccurrenceCount)
			assert.Nil(t, got.Comparison)
		})
	}
}

func TestReplaceCmd_ConfigDefaults(t *testing.T) {
	replaceAll := false
	cfg := &config.Config{Defaults: config.Defaults{CaseSensitive: true, ReplaceAll: &replaceAll}}
	require.NoError(t, cfg.Validate())

	o, ctx := newTestOpts(t, cfg)
	out, err := execute(ctx, NewReplaceCmd(o), "", "--text", "Go go go", "-s", "go", "-r", "run")
	require.NoError(t, err)

	var got replaceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Go run go", got.ModifiedText)
	assert.Equal(t, 2, got.OccurrenceCount)
}

func TestReplaceCmd_Compare(t *testing.T) {
	o, ctx := newTestOpts(t, nil)
	out, err := execute(ctx, NewReplaceCmd(o), "", "--text", "cat hat", "-s", "cat", "-r", "dog", "--compare")
	require.NoError(t, err)

	var got replaceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Comparison)
	assert.Equal(t, "cat hat", got.Comparison["original"])
	assert.Equal(t, "dog hat", got.Comparison["modified"])
}

func TestReplaceCmd_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python is fun. python!"), 0o600))

	o, ctx := newTestOpts(t, nil)
	_, err := execute(ctx, NewReplaceCmd(o), "", "-s", "python", "-r", "Go", "--write", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go is fun. Go!", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestReplaceCmd_WriteRequiresFile(t *testing.T) {
	o, ctx := newTestOpts(t, nil)
	_, err := execute(ctx, NewReplaceCmd(o), "", "--text", "abc", "-s", "a", "-r", "b", "--write")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--write requires a file argument")
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func decodeFiles(t *testing.T, out string) map[string]report.FileResult {
	t.Helper()
	var results []report.FileResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	byName := make(map[string]report.FileResult, len(results))
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}
	return byName
}

func TestAnalyzeCmd(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.md":        "hello world",
		"docs/b.md":   "one two three",
		"vendor/c.md": "ignored",
		"docs/d.txt":  "not markdown",
	})

	cfg := &config.Config{Ignore: []string{"**/vendor/**"}}
	require.NoError(t, cfg.Validate())

	for _, async := range []bool{false, true} {
		t.Run(map[bool]string{false: "sync", true: "async"}[async], func(t *testing.T) {
			o, ctx := newTestOpts(t, cfg)
			args := []string{filepath.Join(dir, "**", "*.md")}
			if async {
				args = append(args, "--async")
			}
			out, err := execute(ctx, NewAnalyzeCmd(o), "", args...)
			require.NoError(t, err)

			got := decodeFiles(t, out)
			require.Len(t, got, 2)
			require.NotNil(t, got["a.md"].Stats)
			assert.Equal(t, 2, got["a.md"].Stats.WordCount)
			require.NotNil(t, got["b.md"].Stats)
			assert.Equal(t, 3, got["b.md"].Stats.WordCount)
		})
	}
}

func TestAnalyzeCmd_NoMatches(t *testing.T) {
	o, ctx := newTestOpts(t, nil)
	out, err := execute(ctx, NewAnalyzeCmd(o), "", filepath.Join(t.TempDir(), "*.md"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApplyCmd(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{
		{Search: "foo", Replace: "baz", Files: "**/*.md"},
		{Search: "BAR", Replace: "qux", CaseSensitive: true},
	}}
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name  string
		write bool
	}{
		{name: "dry_run", write: false},
		{name: "write", write: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTree(t, map[string]string{
				"a.md":  "Foo bar foo",
				"b.txt": "foo BAR",
			})

			o, ctx := newTestOpts(t, cfg)
			args := []string{filepath.Join(dir, "*")}
			if tt.write {
				args = append(args, "--write")
			}
			out, err := execute(ctx, NewApplyCmd(o), "", args...)
			require.NoError(t, err)

			got := decodeFiles(t, out)
			require.Len(t, got, 2)
			assert.Equal(t, 2, got["a.md"].Occurrences)
			assert.True(t, got["a.md"].Modified)
			assert.Equal(t, tt.write, got["a.md"].Written)
			assert.Equal(t, 1, got["b.txt"].Occurrences)

			a, err := os.ReadFile(filepath.Join(dir, "a.md"))
			require.NoError(t, err)
			b, err := os.ReadFile(filepath.Join(dir, "b.txt"))
			require.NoError(t, err)
			if tt.write {
				assert.Equal(t, "baz bar baz", string(a))
				assert.Equal(t, "foo qux", string(b))
			} else {
				assert.Equal(t, "Foo bar foo", string(a))
				assert.Equal(t, "foo BAR", string(b))
			}
		})
	}
}

func TestApplyCmd_NoRules(t *testing.T) {
	o, ctx := newTestOpts(t, nil)
	_, err := execute(ctx, NewApplyCmd(o), "", filepath.Join(t.TempDir(), "*"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no replacement rules configured")
}
