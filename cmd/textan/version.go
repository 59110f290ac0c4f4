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
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ BuildInfo describes the running textan binary
type BuildInfo struct {
	Version  string `json:"version"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
	Commit   string `json:"commit,omitempty"`
	Built    string `json:"built,omitempty"`
	Dirty    bool   `json:"dirty,omitempty"`
}

// ReadBuildInfo collects the module version and VCS stamps embedded by the go tool.
// Binaries built without module support report version "dev".
func ReadBuildInfo() BuildInfo {
	bi := BuildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.Version = v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	bi.Commit = settings["vcs.revision"]
	bi.Built = settings["vcs.time"]
	bi.Dirty = settings["vcs.modified"] == "true"
	return bi
}

// Short is the one-line form, e.g. "v1.2.0 (abc1234, dirty)"
func (b BuildInfo) Short() string {
	if b.Commit == "" {
		return b.Version
	}
	commit := b.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if b.Dirty {
		return fmt.Sprintf("%s (%s, dirty)", b.Version, commit)
	}
	return fmt.Sprintf("%s (%s)", b.Version, commit)
}

// Table renders the build info as a two column table
func (b BuildInfo) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("textan")
	tw.AppendRows([]table.Row{
		{"Version", b.Short()},
		{"Built", valueOr(b.Built, "unknown")},
		{"Go", b.Go},
		{"Platform", b.Platform},
	})
	return tw.Render()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func newVersionCmd(o *opts.RootOpts) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), ReadBuildInfo(), o.Config.Output, short)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version")
	return cmd
}

func writeVersion(w io.Writer, bi BuildInfo, output string, short bool) error {
	switch {
	case output == config.OutputJSON:
		if err := json.NewEncoder(w).Encode(bi); err != nil {
			return errors.Errorf("encoding version: %w", err)
		}
		return nil
	case short:
		_, err := fmt.Fprintln(w, bi.Short())
		return errors.WithStack(err)
	default:
		_, err := fmt.Fprintln(w, bi.Table())
		return errors.WithStack(err)
	}
}
