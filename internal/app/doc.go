// SPDX-License-Identifier: MPL-2.0

// Package app orchestrates one launch: obtain CPU capabilities, resolve
// the backend module path (forced override or selection), load and invoke
// the module, and hand the exit code back to the CLI layer.
//
// The flow is strictly sequential and runs once per process, on the main
// goroutine, with no cancellation, timeout, or retry: a failed probe,
// match, or load is reported once and the process exits.
package app
