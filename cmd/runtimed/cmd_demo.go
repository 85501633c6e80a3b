// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/runtime/config"
)

var cmdDemo = &cobra.Command{
	Use:   "demo",
	Short: "Execute three example blocks and print the resulting state",
	Args:  cobra.NoArgs,
	Run:   runDemo,
}

var flagDemo struct {
	Dump bool
}

func init() {
	cmdMain.AddCommand(cmdDemo)
	cmdDemo.Flags().BoolVar(&flagDemo.Dump, "dump", false, "Dump the final state instead of printing a summary")
}

var demoGenesis = config.Genesis{
	Accounts: []config.GenesisAccount{
		{ID: "alice", Balance: "100"},
	},
}

const demoBlocks = `
- number: 1
  extrinsics:
    - caller: alice
      transfer: { to: bob, amount: "30" }
    - caller: alice
      transfer: { to: charlie, amount: "20" }
- number: 2
  extrinsics:
    - caller: alice
      create_claim: { claim: "Alice's claim" }
    - caller: bob
      create_claim: { claim: "Bob's claim" }
    - caller: alice
      revoke_claim: { claim: "Alice's claim" }
- number: 3
  extrinsics:
    - caller: bob
      revoke_claim: { claim: "Bob's claim" }
`

func runDemo(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	check(err)

	logger, err := newLogger(cfg)
	check(err)

	opts := runOptions{
		Genesis: &demoGenesis,
		Logger:  logger,
		Dump:    flagDemo.Dump,
	}
	check(executeBlocks(cmd.Context(), opts, strings.NewReader(demoBlocks), cmd.OutOrStdout()))
}
