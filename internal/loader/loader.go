// SPDX-License-Identifier: MPL-2.0

package loader

import "fmt"

// EntrySymbol is the fixed name of the exported entry point every backend
// module must provide.
const EntrySymbol = "run"

type (
	// OpenError reports that the dynamic module could not be opened:
	// missing file, wrong format, or unresolved dependent symbols.
	OpenError struct {
		Path string
		Err  error
	}

	// SymbolError reports that the module was opened but the required
	// entry point is absent. The module has already been released.
	SymbolError struct {
		Path   string
		Symbol string
		Err    error
	}

	// ExecError reports that the entry point was invoked and returned an
	// application-level error (a negative status per the ABI).
	ExecError struct {
		Path string
		// Code is the raw negative status returned by the backend.
		Code int
		// Message is the backend-supplied error message, if any.
		Message string
	}
)

// Error implements the error interface.
func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to load backend module %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying open failure.
func (e *OpenError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *SymbolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entry point %q not found in backend module %s: %v", e.Symbol, e.Path, e.Err)
	}
	return fmt.Sprintf("entry point %q not found in backend module %s", e.Symbol, e.Path)
}

// Unwrap returns the underlying resolution failure, if any.
func (e *SymbolError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend module %s reported an error: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("backend module %s reported an error (status %d)", e.Path, e.Code)
}

// Invoke opens the backend module at path, resolves the entry point,
// calls it synchronously on the calling goroutine's thread with the given
// argument sequence, and releases the module once the result is captured.
//
// The returned int is the backend's exit code and is only meaningful when
// the error is nil. Every failure mode maps to exactly one of OpenError,
// SymbolError, or ExecError.
func Invoke(path string, args []string) (int, error) {
	return invoke(path, args)
}
