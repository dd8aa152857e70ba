/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/relx/codec"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render YAML relation listings in another format",
	Long: `Read relation listings exported with --format yaml and write them in
the configured format. Reads stdin when no file is given.

Examples:
  relx demo -q -f yaml > world.yaml
  relx render world.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := codec.ByName(settings.Format)
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening listings: %w", err)
			}
			defer f.Close()
			in = f
		}

		listings, err := codec.NewYAMLCodec().Parse(in)
		if err != nil {
			return err
		}
		return exp.Export(cmd.OutOrStdout(), listings...)
	},
}
