// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/runtime/config"
)

var cmdMain = &cobra.Command{
	Use:   "runtimed",
	Short: "Deterministic pallet runtime",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	Config   string
	LogLevel string
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.Config, "config", "c", "", "Configuration file (TOML)")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "", "Override the log levels, for example \"error;runtime=debug\"")
}

func main() {
	_ = cmdMain.Execute()
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

// loadConfig loads the configuration file named by --config, or the defaults
// if there is none, and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagMain.Config != "" {
		var err error
		cfg, err = config.Load(flagMain.Config)
		if err != nil {
			return nil, err
		}
	}
	if flagMain.LogLevel != "" {
		cfg.Logging.Level = flagMain.LogLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	h, err := cfg.Logging.Handler(os.Stderr)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}
