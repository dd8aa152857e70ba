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

// Package cli implements the relx command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/config"
)

// Settings is the configuration read from flags, RELX_* environment
// variables and the config file, in that order of precedence.
type Settings struct {
	Format       string `mapstructure:"format"`
	LogLevel     string `mapstructure:"log_level"`
	FirstID      int64  `mapstructure:"first_id"`
	AllowNil     bool   `mapstructure:"allow_nil"`
	AutoRegister bool   `mapstructure:"auto_register"`
}

var (
	version  = "dev"
	cfgFile  string
	settings Settings
	// configErr is the error hit by initConfig, reported before any
	// command runs.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "relx",
	Short: "Inspect typed entity relations",
	Long: `relx runs the bundled relation demo and renders relation listings.

Configuration is read from --config, ./relx.yaml or ~/.config/relx/config.yaml,
and from RELX_* environment variables.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./relx.yaml or ~/.config/relx/config.yaml)")
	pf.StringP("format", "f", "", "output format (text, yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.Int64("first-id", 0, "first entity id issued by the registry")
	pf.Bool("allow-nil", false, "accept nil as the no-entity sentinel")
	pf.Bool("auto-register", false, "register unknown entities on insertion")

	rootCmd.AddCommand(demoCmd, kindsCmd, renderCmd)
}

// bindFlags binds the persistent flags to viper keys.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("format", pf.Lookup("format"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("first_id", pf.Lookup("first-id"))
	_ = viper.BindPFlag("allow_nil", pf.Lookup("allow-nil"))
	_ = viper.BindPFlag("auto_register", pf.Lookup("auto-register"))
}

func initConfig() {
	configErr = nil
	bindFlags()
	defaults := config.DefaultConfig()
	viper.SetDefault("format", "text")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("first_id", int64(defaults.FirstID))
	viper.SetDefault("allow_nil", defaults.AllowNil)
	viper.SetDefault("auto_register", defaults.AutoRegister)

	viper.SetEnvPrefix("relx")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. ./relx.yaml
		// 2. ~/.config/relx/config.yaml
		if _, err := os.Stat("relx.yaml"); err == nil {
			viper.SetConfigFile("relx.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "relx"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			configErr = fmt.Errorf("reading config: %w", err)
			return
		}
	}

	if err := viper.Unmarshal(&settings); err != nil {
		configErr = fmt.Errorf("decoding config: %w", err)
	}
}

// options turns s into relx configuration options.
func (s Settings) options(log *slog.Logger) []config.Option {
	return []config.Option{
		config.WithFirstID(apis.ID(s.FirstID)),
		config.WithAllowNil(s.AllowNil),
		config.WithAutoRegister(s.AutoRegister),
		config.WithLogger(log),
	}
}

// newLogger writes text to terminals and JSON elsewhere.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
