// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backendsCmd lists the backend modules present in the library directory
// and marks the one a launch would pick.
var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backend modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		sel, err := application.Selector()
		if err != nil {
			return err
		}

		modules, err := sel.List()
		if err != nil {
			return err
		}

		fmt.Println(TitleStyle.Render("Backend modules") + SubtitleStyle.Render(" in "+sel.LibDir))
		if len(modules) == 0 {
			fmt.Println(SubtitleStyle.Render("  (none)"))
			return nil
		}

		// The pick is advisory here: a detection or selection failure just
		// means nothing gets marked.
		selected := ""
		if info, err := application.DetectInfo(); err == nil {
			if path, err := sel.Select(info, application.Config().Allocator); err == nil {
				selected = path
			}
		}

		for _, m := range modules {
			marker := "  "
			name := m.Name
			if m.Path == selected {
				marker = SuccessStyle.Render("* ")
				name = SuccessStyle.Render(m.Name)
			}
			fmt.Printf("%s%s  %s\n", marker, name,
				SubtitleStyle.Render(fmt.Sprintf("tag=%s variant=%s", m.Tag, m.Variant)))
		}
		return nil
	},
}
