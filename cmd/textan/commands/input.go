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
	"io"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// textInput is the source of the text a command works on
type textInput struct {
	Text string
	Path string // empty unless the text came from a file
}

// addTextFlag registers --text on cmd
func addTextFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "text", "t", "", "text to process instead of a file or stdin")
}

// readInput resolves the text from --text, a file argument, or stdin ("-" or no argument)
func readInput(cmd *cobra.Command, text string, args []string) (textInput, error) {
	if cmd.Flags().Changed("text") {
		if len(args) > 0 {
			return textInput{}, errors.Errorf("--text cannot be combined with a file argument")
		}
		return textInput{Text: text}, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return textInput{}, errors.Errorf("reading input file: %w", err)
		}
		return textInput{Text: string(data), Path: args[0]}, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return textInput{}, errors.Errorf("reading stdin: %w", err)
	}
	return textInput{Text: string(data)}, nil
}
