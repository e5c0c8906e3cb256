// SPDX-License-Identifier: MPL-2.0

//go:build arm64

package cpuinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/cpulaunch/cpulaunch/pkg/platform"
)

// procCPUInfoPath is the platform descriptor consulted on Linux.
var procCPUInfoPath = "/proc/cpuinfo"

// detectHost reports ARM capabilities. There is no user-space bit-level
// capability query on this architecture, so vendor and model come from the
// platform descriptor when readable, and the "neon" tag is always present:
// ASIMD is mandatory on ARMv8-A, so this is a deliberate approximation
// rather than a probe.
func detectHost() (Info, error) {
	info := Info{
		Vendor:   "ARM",
		Model:    "Unknown ARM Processor",
		Features: []string{"neon"},
	}

	switch runtime.GOOS {
	case platform.Linux:
		if data, err := os.ReadFile(procCPUInfoPath); err == nil {
			vendor, model := parseProcCPUInfo(string(data))
			if vendor != "" {
				info.Vendor = vendor
			}
			if model != "" {
				info.Model = model
			}
		}
	case platform.Darwin:
		if brand, ok := darwinBrandString(); ok {
			info.Vendor = "Apple"
			info.Model = brand
		}
	}

	return info, nil
}

// parseProcCPUInfo extracts the vendor ("Hardware" line) and model
// ("model name" or "Processor" line) from /proc/cpuinfo content.
// The first matching line wins per field.
func parseProcCPUInfo(data string) (vendor, model string) {
	for _, line := range strings.Split(data, "\n") {
		switch {
		case vendor == "" && strings.HasPrefix(line, "Hardware"):
			vendor = lineValue(line)
		case model == "" && (strings.HasPrefix(line, "model name") || strings.HasPrefix(line, "Processor")):
			model = lineValue(line)
		}
		if vendor != "" && model != "" {
			break
		}
	}
	return vendor, model
}

func lineValue(line string) string {
	if _, value, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
