// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/cpulaunch/cpulaunch/internal/config"
)

var configShowFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launcher configuration",
	Long: `Manage launcher configuration.

Configuration is stored in:
  - Linux: ~/.config/cpulaunch/config.toml
  - macOS: ~/Library/Application Support/cpulaunch/config.toml
  - Windows: %APPDATA%\cpulaunch\config.toml

Environment variables take precedence over the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "text", "output format: text or toml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func showConfig() error {
	cfg, err := loadConfig()
	if err != nil {
		rendered := ErrorStyle.Render("failed to load configuration")
		fmt.Fprintln(os.Stderr, rendered)
		return err
	}

	switch configShowFormat {
	case "toml":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Print(string(out))
		return nil
	case "", "text":
	default:
		return fmt.Errorf("unknown format %q (want text or toml)", configShowFormat)
	}

	fmt.Println(TitleStyle.Render("Effective Configuration"))
	fmt.Println()

	if path, err := config.ConfigFilePath(); err == nil && fileExistsCheck(path) {
		fmt.Printf("%s: %s\n", CmdStyle.Render("config file"), path)
	} else {
		fmt.Printf("%s: %s\n", CmdStyle.Render("config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", CmdStyle.Render("allocator"), SuccessStyle.Render(cfg.Allocator))
	fmt.Printf("%s: %s\n", CmdStyle.Render("lib_dir"), renderOptional(cfg.LibDir, "(executable-adjacent lib dir)"))
	fmt.Printf("%s: %s\n", CmdStyle.Render("verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.Verbose)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("force_lib_path"), renderOptional(cfg.ForceLibPath, "(not set)"))

	if cfg.Override != nil {
		fmt.Println()
		fmt.Println(SubtitleStyle.Render("capability override active:"))
		fmt.Printf("%s: %s\n", CmdStyle.Render("cpu_vendor"), SuccessStyle.Render(cfg.Override.Vendor))
		fmt.Printf("%s: %s\n", CmdStyle.Render("cpu_model"), renderOptional(cfg.Override.Model, "(defaulted)"))
		fmt.Printf("%s: %s\n", CmdStyle.Render("cpu_features"), featureList(cfg.Override.Features))
	}
	return nil
}

func renderOptional(value, placeholder string) string {
	if value == "" {
		return SubtitleStyle.Render(placeholder)
	}
	return SuccessStyle.Render(value)
}

func fileExistsCheck(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
