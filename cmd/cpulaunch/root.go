// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cpulaunch/cpulaunch/internal/app"
	"github.com/cpulaunch/cpulaunch/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level diagnostics
	verbose bool
	// allocatorFlag overrides the variant discriminator
	allocatorFlag string
	// libDirFlag overrides the backend module directory
	libDirFlag string

	// rootCmd represents the base command. Called without a subcommand it
	// behaves like `cpulaunch run`.
	rootCmd = &cobra.Command{
		Use:   "cpulaunch [-- backend args...]",
		Short: "Run the best-matching CPU-optimized backend",
		Long: TitleStyle.Render("cpulaunch") + SubtitleStyle.Render(" - CPU-dispatching backend launcher") + `

cpulaunch probes the host processor, picks the most capable precompiled
backend module it supports (AVX2, AVX, SSE4.2, NEON, or the generic
baseline), loads it, and hands control to its exported entry point.
Backend modules live in the 'lib' directory next to the executable.

` + SubtitleStyle.Render("Examples:") + `
  cpulaunch                      Launch the best backend with no arguments
  cpulaunch run -- --iters 100   Launch and forward arguments verbatim
  cpulaunch info                 Show detected CPU capabilities
  cpulaunch backends             List backend modules and the pick

` + SubtitleStyle.Render("Overrides:") + `
  CPU_VENDOR + CPU_FEATURES      Replace detected capabilities
  FORCE_LIB_PATH                 Load a specific module, skip selection
  ALLOCATOR                      Variant discriminator (default "system")`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&allocatorFlag, "allocator", "", "variant discriminator (overrides ALLOCATOR)")
	rootCmd.PersistentFlags().StringVar(&libDirFlag, "lib-dir", "", "backend module directory (overrides the executable-adjacent lib dir)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); the backend's exit code
// (or the fixed failure code) becomes the process exit code here.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadConfig loads the layered configuration and applies flag overrides,
// the highest-precedence layer.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	if allocatorFlag != "" {
		cfg.Allocator = allocatorFlag
	}
	if libDirFlag != "" {
		cfg.LibDir = libDirFlag
	}
	return cfg, nil
}

// newLogger builds the diagnostic-stream logger.
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: config.AppName,
	})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newApp builds the production App from configuration and flags.
func newApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(app.Dependencies{
		Config: cfg,
		Logger: newLogger(cfg),
	}), nil
}

// launch performs one launch, forwarding args to the backend with the
// launcher program name at index 0 per the entry-point convention.
func launch(args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	code, err := application.Run(buildArgv(os.Args[0], args))
	if err != nil {
		return err
	}
	if code != 0 {
		// Nonzero soft-failure codes pass through verbatim.
		return &ExitError{Code: code}
	}
	return nil
}

// buildArgv prepends the launcher program name to the forwarded arguments.
func buildArgv(program string, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, program)
	return append(argv, args...)
}
