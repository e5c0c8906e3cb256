// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestSharedLibraryNameFor(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		arch     string
		tag      string
		variant  string
		expected string
	}{
		{
			name:     "linux uses lib prefix and so extension",
			goos:     "linux",
			arch:     "amd64",
			tag:      "avx2",
			variant:  "system",
			expected: "libamd64_avx2_system.so",
		},
		{
			name:     "darwin uses lib prefix and dylib extension",
			goos:     "darwin",
			arch:     "arm64",
			tag:      "neon",
			variant:  "system",
			expected: "libarm64_neon_system.dylib",
		},
		{
			name:     "windows uses no prefix and dll extension",
			goos:     "windows",
			arch:     "amd64",
			tag:      "base",
			variant:  "jemalloc",
			expected: "amd64_base_jemalloc.dll",
		},
		{
			name:     "normalized tag is used verbatim",
			goos:     "linux",
			arch:     "amd64",
			tag:      "sse4_2",
			variant:  "system",
			expected: "libamd64_sse4_2_system.so",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sharedLibraryNameFor(tt.goos, tt.arch, tt.tag, tt.variant)
			if got != tt.expected {
				t.Errorf("sharedLibraryNameFor() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseSharedLibraryNameFor(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		tag     string
		variant string
		ok      bool
	}{
		{
			name:    "simple tag",
			file:    "libamd64_avx2_system.so",
			tag:     "avx2",
			variant: "system",
			ok:      true,
		},
		{
			name:    "tag containing underscore",
			file:    "libamd64_sse4_2_system.so",
			tag:     "sse4_2",
			variant: "system",
			ok:      true,
		},
		{
			name: "wrong extension",
			file: "libamd64_avx2_system.txt",
		},
		{
			name: "wrong architecture",
			file: "libriscv64_base_system.so",
		},
		{
			name: "missing variant",
			file: "libamd64_avx2.so",
		},
		{
			name: "unrelated file",
			file: "README.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, variant, ok := parseSharedLibraryNameFor("linux", "amd64", tt.file)
			if ok != tt.ok {
				t.Fatalf("parseSharedLibraryNameFor(%q) ok = %v, want %v", tt.file, ok, tt.ok)
			}
			if !ok {
				return
			}
			if tag != tt.tag || variant != tt.variant {
				t.Errorf("parseSharedLibraryNameFor(%q) = (%q, %q), want (%q, %q)",
					tt.file, tag, variant, tt.tag, tt.variant)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	name := SharedLibraryName(runtime.GOARCH, "avx2", "system")
	tag, variant, ok := ParseSharedLibraryName(name)
	if !ok {
		t.Fatalf("ParseSharedLibraryName(%q) failed", name)
	}
	if tag != "avx2" || variant != "system" {
		t.Errorf("round trip = (%q, %q), want (avx2, system)", tag, variant)
	}
}

func TestExecutableLibDir(t *testing.T) {
	dir, err := ExecutableLibDir()
	if err != nil {
		t.Fatalf("ExecutableLibDir() error: %v", err)
	}
	if filepath.Base(dir) != LibDirName {
		t.Errorf("expected lib dir to end in %q, got %q", LibDirName, dir)
	}
	if !strings.HasPrefix(dir, string(filepath.Separator)) && runtime.GOOS != "windows" {
		t.Errorf("expected absolute path, got %q", dir)
	}
}
