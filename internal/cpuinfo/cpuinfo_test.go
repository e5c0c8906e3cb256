// SPDX-License-Identifier: MPL-2.0

package cpuinfo

import (
	"errors"
	"reflect"
	"runtime"
	"testing"
)

func TestDetectWithOverride(t *testing.T) {
	info, err := Detect(&Override{
		Vendor:   "TestVendor",
		Model:    "TestModel",
		Features: []string{"avx2", "avx", "sse4.2"},
	})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if info.Vendor != "TestVendor" {
		t.Errorf("vendor = %q, want TestVendor", info.Vendor)
	}
	if info.Model != "TestModel" {
		t.Errorf("model = %q, want TestModel", info.Model)
	}
	if want := []string{"avx2", "avx", "sse4.2"}; !reflect.DeepEqual(info.Features, want) {
		t.Errorf("features = %v, want %v", info.Features, want)
	}
}

func TestDetectOverrideModelDefaultsToUnknown(t *testing.T) {
	info, err := Detect(&Override{
		Vendor:   "TestVendor",
		Features: []string{"feature1"},
	})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if info.Model != UnknownModel {
		t.Errorf("model = %q, want %q", info.Model, UnknownModel)
	}
}

func TestDetectIncompleteOverrideFallsThrough(t *testing.T) {
	// Vendor without features is not a usable override; detection must
	// fall through to hardware probing (which is exercised separately).
	_, errFull := Detect(nil)
	_, errPartial := Detect(&Override{Vendor: "TestVendor"})

	// Both paths must agree: either the host is probeable or it is not.
	if (errFull == nil) != (errPartial == nil) {
		t.Errorf("partial override changed detection outcome: full=%v partial=%v", errFull, errPartial)
	}
}

func TestDetectHost(t *testing.T) {
	info, err := Detect(nil)

	switch runtime.GOARCH {
	case "amd64":
		if err != nil {
			t.Fatalf("Detect() on amd64 error: %v", err)
		}
		if info.Vendor == "" {
			t.Error("expected non-empty vendor on amd64")
		}
		if info.Model == "" {
			t.Error("expected non-empty model on amd64")
		}
	case "arm64":
		if err != nil {
			t.Fatalf("Detect() on arm64 error: %v", err)
		}
		if !info.HasFeature("neon") {
			t.Errorf("expected neon tag on arm64, got %v", info.Features)
		}
	default:
		var detErr *DetectionError
		if !errors.As(err, &detErr) {
			t.Fatalf("expected DetectionError on %s, got %v", runtime.GOARCH, err)
		}
	}
}

func TestDetectReturnsFreshFeatureSlice(t *testing.T) {
	src := &Override{Vendor: "V", Features: []string{"avx"}}
	info, err := Detect(src)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	src.Features[0] = "mutated"
	if info.Features[0] != "avx" {
		t.Error("Info.Features aliases the override slice; expected a copy")
	}
}

func TestHasFeature(t *testing.T) {
	info := Info{Features: []string{"sse4.2", "avx"}}

	tests := []struct {
		tag  string
		want bool
	}{
		{"sse4.2", true},
		{"sse4_2", true}, // separator-normalized match
		{"AVX", true},    // case-normalized match
		{"avx2", false},
		{"base", false}, // "base" is the selector's business, not a feature
	}

	for _, tt := range tests {
		if got := info.HasFeature(tt.tag); got != tt.want {
			t.Errorf("HasFeature(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"sse4.2", "sse4_2"},
		{"sse4_2", "sse4_2"},
		{"AVX2", "avx2"},
		{"neon", "neon"},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.out {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestDetectionErrorMessage(t *testing.T) {
	err := &DetectionError{Reason: "unsupported architecture: wasm"}
	if got := err.Error(); got != "cpu detection failed: unsupported architecture: wasm" {
		t.Errorf("unexpected error message: %q", got)
	}
}
