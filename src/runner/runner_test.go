package runner

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
)

func TestTrimOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b\n", "/a/b"},
		{"/a/b\r\n", "/a/b"},
		{"/a/b\n\n", "/a/b"},
		{"/a/b ", "/a/b "},
		{" /a/b\n", " /a/b"},
		{"/a\n/b\n", "/a\n/b"},
		{"\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TrimOutput(tt.in); got != tt.want {
			t.Errorf("TrimOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func requireUnix(t *testing.T, bin string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell helpers not available on windows")
	}
	if _, err := exec.LookPath(bin); err != nil {
		t.Skipf("%s not found: %v", bin, err)
	}
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	requireUnix(t, "sh")

	out, ok := ExecRunner{}.Run(context.Background(), "sh", "-c", "printf '/tmp/a|/tmp/b\\n'")
	if !ok {
		t.Fatal("Expected ok=true")
	}
	if out != "/tmp/a|/tmp/b" {
		t.Errorf("Expected %q, got %q", "/tmp/a|/tmp/b", out)
	}
}

func TestExecRunnerKeepsInteriorNewlines(t *testing.T) {
	requireUnix(t, "sh")

	out, ok := ExecRunner{}.Run(context.Background(), "sh", "-c", "printf '/a\\n/b\\n'")
	if !ok {
		t.Fatal("Expected ok=true")
	}
	if out != "/a\n/b" {
		t.Errorf("Expected %q, got %q", "/a\n/b", out)
	}
}

func TestExecRunnerFailureIsNoResult(t *testing.T) {
	requireUnix(t, "sh")

	// prints a path but exits non-zero, as a cancelled helper would
	out, ok := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo /tmp/x; exit 1")
	if ok {
		t.Errorf("Expected ok=false, got output %q", out)
	}
	if out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}

func TestExecRunnerEmptyOutputIsNoResult(t *testing.T) {
	requireUnix(t, "sh")

	if out, ok := (ExecRunner{}).Run(context.Background(), "sh", "-c", "echo"); ok {
		t.Errorf("Expected ok=false for blank output, got %q", out)
	}
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	if _, ok := (ExecRunner{}).Run(context.Background(), "native-dialogs-no-such-helper"); ok {
		t.Error("Expected ok=false for missing executable")
	}
}
