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

package main

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textan/pkg/config"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        func(t *testing.T) []string
		stdin       string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, out string)
	}{
		{
			name: "missing_config_uses_defaults",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "-o", "json", "stats", "--text", "Hello World"}
			},
			validate: func(t *testing.T, out string) {
				var got map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &got))
				assert.EqualValues(t, 2, got["word_count"])
			},
		},
		{
			name: "config_sets_output_and_watch_terms",
			args: func(t *testing.T) []string {
				cfg := writeConfig(t, "textan.yaml", "output: json\nwatch_terms: [golang]\n")
				return []string{"-c", cfg, "stats", "--text", "I write Golang"}
			},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, `"term":"golang","found":true`)
			},
		},
		{
			name: "hcl_config_defaults",
			args: func(t *testing.T) []string {
				cfg := writeConfig(t, "textan.hcl", `
output = "json"

defaults {
  replace_all = false
}
`)
				return []string{"-c", cfg, "replace", "--text", "aaa", "-s", "a", "-r", "b"}
			},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, `"modified_text":"baa"`)
				assert.Contains(t, out, `"occurrence_count":3`)
			},
		},
		{
			name: "text_output",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "transform", "-m", "lower", "--text", "LOUD"}
			},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "loud")
			},
		},
		{
			name: "invalid_output_flag",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "-o", "xml", "stats", "--text", "x"}
			},
			wantErr:     true,
			errContains: "xml",
		},
		{
			name: "invalid_config",
			args: func(t *testing.T) []string {
				cfg := writeConfig(t, "textan.yaml", "unknown_key: true\n")
				return []string{"-c", cfg, "stats", "--text", "x"}
			},
			wantErr:     true,
			errContains: "loading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args(t)...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, out)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	none := filepath.Join(t.TempDir(), "none.yaml")

	out, err := run(t, "", "-c", none, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "textan")
	assert.Contains(t, out, ReadBuildInfo().Go)

	out, err = run(t, "", "-c", none, "-o", "json", "version")
	require.NoError(t, err)
	var got BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, ReadBuildInfo().Platform, got.Platform)
}

func TestBuildInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{name: "no_vcs", info: BuildInfo{Version: "dev"}, want: "dev"},
		{name: "commit_truncated", info: BuildInfo{Version: "v1.2.0", Commit: "abc1234def5678"}, want: "v1.2.0 (abc1234)"},
		{name: "dirty", info: BuildInfo{Version: "dev", Commit: "abc", Dirty: true}, want: "dev (abc, dirty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestWriteVersion(t *testing.T) {
	bi := BuildInfo{Version: "v0.3.1", Go: "go1.24.0", Platform: "linux/amd64", Commit: "0123456789"}

	tests := []struct {
		name   string
		output string
		short  bool
		check  func(t *testing.T, out string)
	}{
		{
			name:   "table",
			output: config.OutputText,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "v0.3.1 (0123456)")
				assert.Contains(t, out, "unknown", "missing build time")
				assert.Contains(t, out, "linux/amd64")
			},
		},
		{
			name:   "short",
			output: config.OutputText,
			short:  true,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "v0.3.1 (0123456)\n", out)
			},
		},
		{
			name:   "json_wins_over_short",
			output: config.OutputJSON,
			short:  true,
			check: func(t *testing.T, out string) {
				assert.JSONEq(t, `{"version":"v0.3.1","go":"go1.24.0","platform":"linux/amd64","commit":"0123456789"}`, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, writeVersion(buf, bi, tt.output, tt.short))
			tt.check(t, buf.String())
		})
	}
}

func TestRootCmd_DebugLogsToCommandStderr(t *testing.T) {
	cfg := writeConfig(t, "textan.yaml", "output: json\n")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--debug", "-c", cfg, "stats", "--text", "Hello World"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, stderr.String(), "initialized")
	assert.Contains(t, stderr.String(), cfg)
	assert.NotContains(t, stdout.String(), "initialized")

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got), "stdout holds only the rendered result")
}
