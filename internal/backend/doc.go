// SPDX-License-Identifier: MPL-2.0

// Package backend locates the backend module that best matches the host
// CPU capabilities.
//
// Selection walks a fixed, architecture-appropriate priority ladder of
// feature tags from most to least specialized, terminating in the
// universal "base" tag, and returns the first candidate file that exists
// in the library directory. The ladder is finite and "base" always
// qualifies, so the search always terminates.
package backend
