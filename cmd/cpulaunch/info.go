// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/cpulaunch/cpulaunch/internal/app"
)

var infoFull bool

// infoCmd reports the detected (or overridden) CPU capabilities and the
// backend module the launcher would pick, without loading anything.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show detected CPU capabilities and the selection preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		info, err := application.DetectInfo()
		if err != nil {
			return err
		}

		fmt.Println(TitleStyle.Render("CPU"))
		fmt.Printf("%s: %s\n", CmdStyle.Render("vendor"), info.Vendor)
		fmt.Printf("%s: %s\n", CmdStyle.Render("model"), info.Model)
		fmt.Printf("%s: %s\n", CmdStyle.Render("features"), featureList(info.Features))
		fmt.Printf("%s: %s/%s\n", CmdStyle.Render("platform"), runtime.GOOS, runtime.GOARCH)
		if application.Config().Override != nil {
			fmt.Printf("%s\n", SubtitleStyle.Render("(capabilities overridden via environment)"))
		}

		fmt.Println()
		fmt.Println(TitleStyle.Render("Selection"))
		printSelectionPreview(application)

		if infoFull {
			fmt.Println()
			fmt.Println(TitleStyle.Render("Raw feature flags"))
			printRawFlags()
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoFull, "full", false, "also dump raw per-architecture feature flags")
}

func featureList(features []string) string {
	if len(features) == 0 {
		return SubtitleStyle.Render("(none)")
	}
	return strings.Join(features, ", ")
}

// printSelectionPreview runs the selector exactly as a launch would and
// prints the outcome. Selection failures are reported inline rather than
// failing the command, since the point of `info` is diagnosis.
func printSelectionPreview(application *app.App) {
	cfg := application.Config()
	fmt.Printf("%s: %s\n", CmdStyle.Render("allocator"), cfg.Allocator)

	if cfg.ForceLibPath != "" {
		fmt.Printf("%s: %s %s\n",
			CmdStyle.Render("module"),
			cfg.ForceLibPath,
			SubtitleStyle.Render("(forced, selection bypassed)"))
		return
	}

	sel, err := application.Selector()
	if err != nil {
		fmt.Printf("%s: %s\n", CmdStyle.Render("module"), ErrorStyle.Render(err.Error()))
		return
	}
	fmt.Printf("%s: %s\n", CmdStyle.Render("lib dir"), sel.LibDir)

	info, err := application.DetectInfo()
	if err != nil {
		fmt.Printf("%s: %s\n", CmdStyle.Render("module"), ErrorStyle.Render(err.Error()))
		return
	}

	path, err := sel.Select(info, cfg.Allocator)
	if err != nil {
		fmt.Printf("%s: %s\n", CmdStyle.Render("module"), ErrorStyle.Render(err.Error()))
		return
	}
	fmt.Printf("%s: %s\n", CmdStyle.Render("module"), SuccessStyle.Render(path))
}

// printRawFlags dumps the kernel/hardware feature flags reported by the
// runtime support package. Fields for foreign architectures are all false.
func printRawFlags() {
	flags := []struct {
		name string
		on   bool
	}{
		{"x86.sse2", cpu.X86.HasSSE2},
		{"x86.sse3", cpu.X86.HasSSE3},
		{"x86.ssse3", cpu.X86.HasSSSE3},
		{"x86.sse41", cpu.X86.HasSSE41},
		{"x86.sse42", cpu.X86.HasSSE42},
		{"x86.avx", cpu.X86.HasAVX},
		{"x86.avx2", cpu.X86.HasAVX2},
		{"x86.avx512f", cpu.X86.HasAVX512F},
		{"x86.fma", cpu.X86.HasFMA},
		{"x86.popcnt", cpu.X86.HasPOPCNT},
		{"arm64.asimd", cpu.ARM64.HasASIMD},
		{"arm64.fp", cpu.ARM64.HasFP},
		{"arm64.sve", cpu.ARM64.HasSVE},
		{"arm64.aes", cpu.ARM64.HasAES},
		{"arm64.crc32", cpu.ARM64.HasCRC32},
	}
	for _, f := range flags {
		state := SubtitleStyle.Render("off")
		if f.on {
			state = SuccessStyle.Render("on")
		}
		fmt.Printf("  %-16s %s\n", f.name, state)
	}
}
