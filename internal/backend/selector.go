// SPDX-License-Identifier: MPL-2.0

package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/cpulaunch/cpulaunch/internal/cpuinfo"
	"github.com/cpulaunch/cpulaunch/pkg/platform"
)

// BaseTag is the universal fallback tag. It is always considered
// supported regardless of detected features, so every ladder terminates.
const BaseTag = "base"

// DefaultVariant is the allocator/variant discriminator used when none is
// configured.
const DefaultVariant = "system"

type (
	// Selector finds backend module files inside a fixed-layout library
	// directory.
	Selector struct {
		// LibDir is the directory searched for backend modules.
		LibDir string

		logger *log.Logger
	}

	// Module describes one backend module file found in the library
	// directory.
	Module struct {
		// Name is the bare filename.
		Name string
		// Path is the full path inside the library directory.
		Path string
		// Tag is the feature tag encoded in the filename (normalized
		// form, e.g. "sse4_2").
		Tag string
		// Variant is the allocator/variant discriminator from the
		// filename.
		Variant string
	}

	// MissingLibDirError reports that the library directory itself does
	// not exist. It is distinct from NoMatchError to aid diagnosis.
	MissingLibDirError struct {
		Dir string
	}

	// NoMatchError reports that the directory exists but no candidate in
	// the priority ladder corresponds to an existing file.
	NoMatchError struct {
		Dir     string
		Variant string
	}
)

// Error implements the error interface.
func (e *MissingLibDirError) Error() string {
	return fmt.Sprintf("library directory not found: %s", e.Dir)
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching backend module for variant %q in directory: %s", e.Variant, e.Dir)
}

// NewSelector returns a Selector over the given library directory.
func NewSelector(libDir string, logger *log.Logger) *Selector {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Selector{LibDir: libDir, logger: logger}
}

// Select returns the path of the most specialized backend module the given
// capability set supports. Candidates are tried strictly in ladder order;
// the first tag that is supported (BaseTag always is) and whose composed
// filename exists on disk wins, and no further candidates are considered.
func (s *Selector) Select(info cpuinfo.Info, variant string) (string, error) {
	if variant == "" {
		variant = DefaultVariant
	}

	if fi, err := os.Stat(s.LibDir); err != nil || !fi.IsDir() {
		return "", &MissingLibDirError{Dir: s.LibDir}
	}

	for _, tag := range priorityTags {
		if tag != BaseTag && !info.HasFeature(tag) {
			continue
		}

		name := platform.SharedLibraryName(runtime.GOARCH, cpuinfo.NormalizeTag(tag), variant)
		path := filepath.Join(s.LibDir, name)
		if fileExists(path) {
			s.logger.Debug("selected backend module", "tag", tag, "path", path)
			return path, nil
		}
		s.logger.Debug("backend module not present, trying next candidate", "path", path)
	}

	return "", &NoMatchError{Dir: s.LibDir, Variant: variant}
}

// List enumerates the backend modules present in the library directory,
// sorted by filename. Files that do not follow the module naming
// convention for this OS and architecture are ignored.
func (s *Selector) List() ([]Module, error) {
	entries, err := os.ReadDir(s.LibDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingLibDirError{Dir: s.LibDir}
		}
		return nil, fmt.Errorf("read library directory %s: %w", s.LibDir, err)
	}

	var modules []Module
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		tag, variant, ok := platform.ParseSharedLibraryName(entry.Name())
		if !ok {
			continue
		}
		modules = append(modules, Module{
			Name:    entry.Name(),
			Path:    filepath.Join(s.LibDir, entry.Name()),
			Tag:     tag,
			Variant: variant,
		})
	}

	slices.SortFunc(modules, func(a, b Module) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return modules, nil
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
