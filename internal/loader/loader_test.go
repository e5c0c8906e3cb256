// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testBackendEnv names a prebuilt backend module implementing the entry
// point ABI (see examples/backend). Invocation round-trip tests are gated
// on it so the suite stays runnable without a compiled fixture.
const testBackendEnv = "CPULAUNCH_TEST_BACKEND"

func TestInvokeMissingModule(t *testing.T) {
	_, err := Invoke(filepath.Join(t.TempDir(), "no-such-module.so"), []string{"cpulaunch"})

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected OpenError for missing module, got %v", err)
	}
	if openErr.Path == "" {
		t.Error("OpenError must carry the offending path")
	}
}

func TestInvokeRoundTrip(t *testing.T) {
	backendPath := os.Getenv(testBackendEnv)
	if backendPath == "" {
		t.Skipf("%s not set; skipping invocation round-trip", testBackendEnv)
	}

	tests := []struct {
		name string
		args []string
		code int
	}{
		{
			name: "exit code zero",
			args: []string{"cpulaunch"},
			code: 0,
		},
		{
			name: "nonzero soft failure propagated verbatim",
			args: []string{"cpulaunch", "--exit-code", "3"},
			code: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Invoke(backendPath, tt.args)
			if err != nil {
				t.Fatalf("Invoke() error: %v", err)
			}
			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
		})
	}
}

func TestInvokeBackendError(t *testing.T) {
	backendPath := os.Getenv(testBackendEnv)
	if backendPath == "" {
		t.Skipf("%s not set; skipping invocation round-trip", testBackendEnv)
	}

	_, err := Invoke(backendPath, []string{"cpulaunch", "--fail", "boom"})

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got %v", err)
	}
	if execErr.Message != "boom" {
		t.Errorf("message = %q, want %q", execErr.Message, "boom")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "open error",
			err:  &OpenError{Path: "/x/lib.so", Err: errors.New("not found")},
			want: "failed to load backend module /x/lib.so: not found",
		},
		{
			name: "symbol error without cause",
			err:  &SymbolError{Path: "/x/lib.so", Symbol: EntrySymbol},
			want: `entry point "run" not found in backend module /x/lib.so`,
		},
		{
			name: "exec error with message",
			err:  &ExecError{Path: "/x/lib.so", Code: -1, Message: "bad input"},
			want: "backend module /x/lib.so reported an error: bad input",
		},
		{
			name: "exec error without message",
			err:  &ExecError{Path: "/x/lib.so", Code: -2},
			want: "backend module /x/lib.so reported an error (status -2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCArgv(t *testing.T) {
	argv, backing := cArgv([]string{"cpulaunch", "--flag"})

	if len(argv) != 3 {
		t.Fatalf("argv length = %d, want 3 (2 args + NULL terminator)", len(argv))
	}
	if argv[2] != nil {
		t.Error("argv must be NULL-terminated")
	}
	if got := goString(argv[0]); got != "cpulaunch" {
		t.Errorf("argv[0] = %q, want %q", got, "cpulaunch")
	}
	if got := goString(argv[1]); got != "--flag" {
		t.Errorf("argv[1] = %q, want %q", got, "--flag")
	}
	if len(backing) != 2 {
		t.Errorf("backing length = %d, want 2", len(backing))
	}
}

func TestGoStringNil(t *testing.T) {
	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q, want empty", got)
	}
}
