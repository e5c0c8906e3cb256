// SPDX-License-Identifier: MPL-2.0

// Package loader opens a backend module, resolves its single exported
// entry point, invokes it, and releases the module. This is the one
// explicitly-unsafe boundary in the launcher; the raw resolved function is
// never exposed outside this package.
//
// # Entry point ABI
//
// A backend module must export exactly one symbol, named "run", with the
// C ABI
//
//	int32_t run(int32_t argc, char** argv, char** errmsg);
//
// argv carries argc NUL-terminated argument strings (the launcher's
// program name at index 0) followed by a terminating NULL pointer. A
// non-negative return value is the process exit code and is propagated
// verbatim, including nonzero soft-failure codes. A negative return value
// signals an application-level error; the backend may set *errmsg to a
// NUL-terminated message it owns, which the loader copies before the
// module is released.
//
// This is the entire contract between launcher and backend. No other
// symbols are required or inspected, and a backend violating the contract
// is reported as a runtime error, never treated as a programming error.
//
// The load-resolve-invoke-release cycle is strictly sequential with no
// retries, and runs exactly once per process. The module handle stays open
// for the full duration of the call and is released only after the result
// has been captured.
package loader
