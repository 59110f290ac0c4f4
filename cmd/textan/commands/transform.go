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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewTransformCmd creates the transform command
func NewTransformCmd(o *opts.RootOpts) *cobra.Command {
	var (
		text string
		mode string
	)

	modes := make([]string, 0, len(transform.Modes))
	for _, m := range transform.Modes {
		modes = append(modes, string(m))
	}

	cmd := &cobra.Command{
		Use:   "transform [FILE|-]",
		Short: "Change the case of the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := transform.ParseMode(mode)
			if err != nil {
				return err
			}

			in, err := readInput(cmd, text, args)
			if err != nil {
				return err
			}

			out, err := transform.Apply(m, in.Text)
			if err != nil {
				return err
			}

			if err := o.Renderer.Transform(cmd.OutOrStdout(), m, out); err != nil {
				return errors.Errorf("rendering transform: %w", err)
			}
			return nil
		},
	}

	addTextFlag(cmd, &text)
	cmd.Flags().StringVarP(&mode, "mode", "m", string(transform.ModeUpper), "case mode: "+strings.Join(modes, ", "))
	return cmd
}
