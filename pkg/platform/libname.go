// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// LibDirName is the name of the backend module directory, resolved
// relative to the running executable.
const LibDirName = "lib"

// SharedLibraryName composes the filename of a backend module for the
// current operating system: {prefix}{arch}_{tag}_{variant}.{ext}, where the
// prefix is "lib" and the extension "so"/"dylib" on Unix-like systems, and
// there is no prefix and the extension is "dll" on Windows.
//
// The tag is used as given; callers are responsible for normalizing
// separator characters (e.g. "sse4.2" -> "sse4_2") before composing a name.
func SharedLibraryName(arch, tag, variant string) string {
	return sharedLibraryNameFor(runtime.GOOS, arch, tag, variant)
}

func sharedLibraryNameFor(goos, arch, tag, variant string) string {
	base := fmt.Sprintf("%s_%s_%s", arch, tag, variant)
	switch goos {
	case Windows:
		return base + ".dll"
	case Darwin:
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}

// ParseSharedLibraryName splits a backend module filename into its tag and
// variant components. It reports ok=false for filenames that do not follow
// the naming convention for the current OS and architecture.
//
// Tags may themselves contain underscores ("sse4_2"), so the variant is
// taken from the last underscore-separated segment and the tag is
// everything between the architecture and the variant.
func ParseSharedLibraryName(name string) (tag, variant string, ok bool) {
	return parseSharedLibraryNameFor(runtime.GOOS, runtime.GOARCH, name)
}

func parseSharedLibraryNameFor(goos, arch, name string) (tag, variant string, ok bool) {
	var ext, prefix string
	switch goos {
	case Windows:
		prefix, ext = "", ".dll"
	case Darwin:
		prefix, ext = "lib", ".dylib"
	default:
		prefix, ext = "lib", ".so"
	}

	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
		return "", "", false
	}
	base := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)

	if !strings.HasPrefix(base, arch+"_") {
		return "", "", false
	}
	rest := strings.TrimPrefix(base, arch+"_")

	idx := strings.LastIndex(rest, "_")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}

// ExecutableLibDir returns the backend module directory: the "lib"
// subdirectory next to the running executable. It does not check whether
// the directory exists; that is the selector's concern, which reports a
// distinct error for a missing directory.
func ExecutableLibDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), LibDirName), nil
}
