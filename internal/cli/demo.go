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

	"github.com/spf13/cobra"

	"dirpx.dev/relx"
	"dirpx.dev/relx/codec"
	"dirpx.dev/relx/internal/demo"
)

var demoQuiet bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the guild and inventory demo",
	Long: `Run a small role-playing scenario built on relations and print every
relation and its inverse.

Rule violations hit during the scenario are printed to stderr.

Examples:
  relx demo
  relx demo --format yaml
  RELX_LOG_LEVEL=debug relx demo -q`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := codec.ByName(settings.Format)
		if err != nil {
			return err
		}
		log, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
		if err != nil {
			return err
		}

		msgs := cmd.ErrOrStderr()
		if demoQuiet {
			msgs = nil
		}
		w := demo.NewWorld(relx.New(settings.options(log)...), msgs)
		defer w.Close()

		if err := demo.Play(w); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		return exp.Export(cmd.OutOrStdout(), w.Listings()...)
	},
}

func init() {
	demoCmd.Flags().BoolVarP(&demoQuiet, "quiet", "q", false, "do not print rule violations")
}
