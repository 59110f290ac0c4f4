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
	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/session"
	"github.com/walteh/textan/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewStatsCmd creates the stats command
func NewStatsCmd(o *opts.RootOpts) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "stats [FILE|-]",
		Short: "Show word, character and vowel statistics",
		Long: `Stats reports basic statistics about the text:
1. Words: whitespace separated tokens
2. Characters: every code point, whitespace included
3. Vowels: a, e, i, o and u in any case
4. Average word length

It also checks the configured watch terms (default: python).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, text, args)
			if err != nil {
				return err
			}

			rep, err := session.New(in.Text).Analyze()
			if err != nil {
				if errors.Is(err, session.ErrBlankInput) {
					o.UserLogger.LogValidation(false, "Please enter some text to analyze!", nil)
				}
				return err
			}

			hits := transform.FindTerms(in.Text, o.Config.WatchTerms)
			if err := o.Renderer.Stats(cmd.OutOrStdout(), rep, hits); err != nil {
				return errors.Errorf("rendering stats: %w", err)
			}
			return nil
		},
	}

	addTextFlag(cmd, &text)
	return cmd
}
