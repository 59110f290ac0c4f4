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
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/session"
	"gitlab.com/tozd/go/errors"
)

// NewReplaceCmd creates the replace command
func NewReplaceCmd(o *opts.RootOpts) *cobra.Command {
	var (
		text          string
		search        string
		replacement   string
		caseSensitive bool
		first         bool
		compare       bool
		write         bool
	)

	cmd := &cobra.Command{
		Use:   "replace [FILE|-]",
		Short: "Search for a literal term and replace it",
		Long: `Replace finds every occurrence of --search and substitutes --replace.
It will:
1. Match case-insensitively unless --case-sensitive is set
2. Replace all occurrences, or only the first with --first
3. Report how many occurrences were found in total
4. Optionally show a diff (--compare) and write the result back (--write)

An empty --replace deletes the matches. Defaults come from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, text, args)
			if err != nil {
				return err
			}
			if write && in.Path == "" {
				return errors.Errorf("--write requires a file argument")
			}

			cs := o.Config.Defaults.CaseSensitive
			if cmd.Flags().Changed("case-sensitive") {
				cs = caseSensitive
			}
			replaceAll := o.Config.ReplaceAll()
			if cmd.Flags().Changed("first") {
				replaceAll = !first
			}

			s := session.New(in.Text)
			if cmd.Flags().Changed("replace") {
				s.SetTerms(search, replacement)
			} else {
				s.SearchTerm = search
			}

			term := s.SearchTerm
			res, err := s.Replace(o.Replacer, cs, replaceAll)
			switch {
			case errors.Is(err, session.ErrBlankInput):
				o.UserLogger.LogValidation(false, "Please enter some text to analyze!", nil)
				return err
			case errors.Is(err, session.ErrMissingTerms):
				o.UserLogger.LogValidation(false, "Please enter both search and replace words.", nil)
				return err
			case err != nil:
				return err
			}

			var cmp *session.Comparison
			if compare && res.Matched {
				c := s.Compare()
				cmp = &c
			}

			if err := o.Renderer.Replace(cmd.OutOrStdout(), term, res, cmp); err != nil {
				return errors.Errorf("rendering result: %w", err)
			}

			if write && s.Promote() {
				if err := writeBack(in.Path, s.Input); err != nil {
					return err
				}
				o.UserLogger.LogStateChange("Wrote modified text to " + in.Path)
			}
			return nil
		},
	}

	addTextFlag(cmd, &text)
	cmd.Flags().StringVarP(&search, "search", "s", "", "literal term to search for")
	cmd.Flags().StringVarP(&replacement, "replace", "r", "", "replacement text, may be empty")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")
	cmd.Flags().BoolVar(&first, "first", false, "replace only the first occurrence")
	cmd.Flags().BoolVar(&compare, "compare", false, "show a diff of original and modified text")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the modified text back to FILE")
	return cmd
}

func writeBack(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}
