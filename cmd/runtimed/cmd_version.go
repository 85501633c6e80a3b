// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	runtimed "gitlab.com/accumulatenetwork/runtime"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Prints the software version",
	Args:  cobra.NoArgs,
	Run:   printVersion,
}

var flagVersion struct {
	VersionOnly  bool
	KnownVersion bool
}

func init() {
	cmdMain.AddCommand(cmdVersion)
	cmdVersion.Flags().BoolVarP(&flagVersion.VersionOnly, "short", "s", false, "Only print the version")
	cmdVersion.Flags().BoolVarP(&flagVersion.KnownVersion, "known", "k", false, "Fail if the version is unknown")
}

func printVersion(cmd *cobra.Command, _ []string) {
	if flagVersion.KnownVersion && !runtimed.IsVersionKnown() {
		fatalf("version unknown")
	}
	if flagVersion.VersionOnly {
		fmt.Println(runtimed.Version)
		return
	}
	fmt.Printf("%s %s\n", cmdMain.Short, runtimed.Version)
}
