// SPDX-License-Identifier: MPL-2.0

package cpuinfo

import (
	"fmt"
	"strings"
)

// UnknownModel is the model string reported when no model information is
// available (override without CPU_MODEL, or an unreadable platform
// descriptor on ARM).
const UnknownModel = "Unknown"

type (
	// Info describes the host processor. It is created once per process
	// run, either by probing or from an Override, and is immutable
	// thereafter.
	Info struct {
		// Vendor is the processor vendor string (e.g. "GenuineIntel").
		Vendor string
		// Model is the processor brand/model string.
		Model string
		// Features holds normalized lowercase instruction-set tags in
		// detection order (e.g. "sse4.2", "avx", "avx2", "neon").
		// Duplicates are harmless and are not deduplicated.
		Features []string
	}

	// Override is an externally supplied capability description that fully
	// replaces hardware probing. It is constructed once at the call site
	// from the environment rather than read implicitly inside Detect.
	Override struct {
		Vendor   string
		Model    string
		Features []string
	}

	// DetectionError reports that capability detection failed: either the
	// host architecture is unsupported, or a required hardware query was
	// unavailable.
	DetectionError struct {
		Reason string
	}
)

// Error implements the error interface.
func (e *DetectionError) Error() string {
	return fmt.Sprintf("cpu detection failed: %s", e.Reason)
}

// HasFeature reports whether the capability set contains the given tag,
// comparing with separator characters normalized on both sides.
func (i Info) HasFeature(tag string) bool {
	want := NormalizeTag(tag)
	for _, f := range i.Features {
		if NormalizeTag(f) == want {
			return true
		}
	}
	return false
}

// NormalizeTag lowercases a feature tag and replaces dot separators with
// underscores, the form used in backend module filenames ("sse4.2" ->
// "sse4_2").
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(tag), ".", "_")
}

// Detect returns the capability description of the host processor.
//
// When o supplies both a vendor and a feature list, it is returned
// verbatim without touching the hardware; a missing model defaults to
// UnknownModel. Otherwise detection dispatches on the host architecture.
func Detect(o *Override) (Info, error) {
	if o != nil && o.Vendor != "" && len(o.Features) > 0 {
		model := o.Model
		if model == "" {
			model = UnknownModel
		}
		return Info{
			Vendor:   o.Vendor,
			Model:    model,
			Features: append([]string(nil), o.Features...),
		}, nil
	}
	return detectHost()
}
