// SPDX-License-Identifier: MPL-2.0

package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/cpulaunch/cpulaunch/internal/backend"
	"github.com/cpulaunch/cpulaunch/internal/config"
	"github.com/cpulaunch/cpulaunch/internal/cpuinfo"
	"github.com/cpulaunch/cpulaunch/internal/loader"
	"github.com/cpulaunch/cpulaunch/pkg/platform"
)

type (
	// App wires the launch pipeline. It is the composition root for the
	// launcher: the CLI layer constructs one App per invocation and
	// delegates through its function fields, which exist so tests can
	// substitute the probing and loading stages.
	App struct {
		cfg    *config.Config
		logger *log.Logger

		detect func(*cpuinfo.Override) (cpuinfo.Info, error)
		invoke func(string, []string) (int, error)
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by New.
	Dependencies struct {
		Config *config.Config
		Logger *log.Logger
		Detect func(*cpuinfo.Override) (cpuinfo.Info, error)
		Invoke func(string, []string) (int, error)
	}

	// PathError reports a filesystem-path failure outside the selector:
	// the executable directory could not be resolved, or a forced module
	// path does not exist.
	PathError struct {
		Path   string
		Reason string
	}
)

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Path)
	}
	return e.Reason
}

// New builds an App, filling nil dependencies with production defaults.
func New(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(os.Stderr)
	}
	if deps.Detect == nil {
		deps.Detect = cpuinfo.Detect
	}
	if deps.Invoke == nil {
		deps.Invoke = loader.Invoke
	}
	return &App{
		cfg:    deps.Config,
		logger: deps.Logger,
		detect: deps.Detect,
		invoke: deps.Invoke,
	}
}

// Run executes one launch with the given argument sequence (the launcher
// program name at index 0, per the entry-point convention) and returns the
// backend's exit code. Every error is terminal; the CLI layer maps it to
// the fixed failure exit code.
func (a *App) Run(args []string) (int, error) {
	// Advisory diagnostics, printed on every launch; never affects
	// control flow.
	a.logger.Info("system", "os", runtime.GOOS, "arch", runtime.GOARCH)

	info, err := a.detect(a.cfg.Override)
	if err != nil {
		return 0, err
	}
	a.logger.Info("cpu detected",
		"vendor", info.Vendor,
		"model", info.Model,
		"features", info.Features,
	)

	path, err := a.resolveModulePath(info)
	if err != nil {
		return 0, err
	}
	a.logger.Info("backend module resolved", "path", path)

	return a.invoke(path, args)
}

// resolveModulePath decides which backend module to load: the forced path
// when configured (bypassing selection entirely), otherwise the selector's
// first match for the detected capabilities and configured variant.
func (a *App) resolveModulePath(info cpuinfo.Info) (string, error) {
	if forced := a.cfg.ForceLibPath; forced != "" {
		if fi, err := os.Stat(forced); err != nil || fi.IsDir() {
			return "", &PathError{Path: forced, Reason: "forced backend module not found"}
		}
		a.logger.Info("using forced backend module", "path", forced)
		return forced, nil
	}

	libDir, err := a.libDir()
	if err != nil {
		return "", err
	}

	sel := backend.NewSelector(libDir, a.logger)
	return sel.Select(info, a.cfg.Allocator)
}

// Selector returns a selector over the configured library directory, for
// diagnostic commands that preview or list candidates without loading.
func (a *App) Selector() (*backend.Selector, error) {
	libDir, err := a.libDir()
	if err != nil {
		return nil, err
	}
	return backend.NewSelector(libDir, a.logger), nil
}

// Config returns the effective configuration the App was built with.
func (a *App) Config() *config.Config { return a.cfg }

// DetectInfo runs capability detection with the configured override, for
// diagnostic commands.
func (a *App) DetectInfo() (cpuinfo.Info, error) {
	return a.detect(a.cfg.Override)
}

func (a *App) libDir() (string, error) {
	if a.cfg.LibDir != "" {
		return a.cfg.LibDir, nil
	}
	dir, err := platform.ExecutableLibDir()
	if err != nil {
		return "", &PathError{Reason: "could not determine executable directory"}
	}
	return dir, nil
}
