package errors

import (
	"bytes"
	"fmt"
	"testing"
)

func captureExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	oldStderr, oldExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = oldStderr
		exit = oldExit
	})
	return &buf, &code
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", fmt.Errorf("boom"), "Error: boom"},
		{"wrapped", fmt.Errorf("load: %w", fmt.Errorf("missing")), "Error: load: missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	buf, code := captureExit(t)

	Fatal(fmt.Errorf("storage not initialized"))

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if buf.String() != "Error: storage not initialized\n" {
		t.Errorf("stderr = %q", buf.String())
	}
}

func TestFatalNil(t *testing.T) {
	buf, code := captureExit(t)

	Fatal(nil)

	if *code != -1 || buf.Len() != 0 {
		t.Errorf("Fatal(nil) should do nothing, got code %d output %q", *code, buf.String())
	}
}
