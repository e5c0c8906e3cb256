// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed abi.md
var abiDoc string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Reference documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// docsABICmd renders the backend entry-point contract in the terminal.
var docsABICmd = &cobra.Command{
	Use:   "abi",
	Short: "Show the backend entry-point contract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			return err
		}
		out, err := renderer.Render(abiDoc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	docsCmd.AddCommand(docsABICmd)
}
