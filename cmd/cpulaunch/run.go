// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// runCmd is the explicit form of the root launch behavior. Arguments after
// `--` are forwarded to the backend untouched.
var runCmd = &cobra.Command{
	Use:   "run [-- backend args...]",
	Short: "Select, load, and run the best backend module",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(args)
	},
}
