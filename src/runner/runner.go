package runner

import (
	"bytes"
	"context"
	"log"
	"os/exec"
	"strings"
)

// Runner starts an external helper and returns its standard output.
// ok is false when the process could not be started, exited with failure,
// or printed nothing.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (out string, ok bool)
}

// ExecRunner runs helpers with os/exec. One attempt per call, no retries.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, bool) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Printf("Runner: executing %s %q", name, args)
	if err := cmd.Run(); err != nil {
		// osascript exits 1 with "User canceled. (-128)" on stderr, zenity/kdialog exit 1 silently
		log.Printf("Runner: %s failed: %v (stderr: %q)", name, err, strings.TrimSpace(stderr.String()))
		return "", false
	}

	out := TrimOutput(stdout.String())
	if out == "" {
		log.Printf("Runner: %s produced no output", name)
		return "", false
	}
	return out, true
}

// TrimOutput strips trailing line terminators only. Spaces are kept because
// they may belong to a path, and interior newlines are kept for helpers that
// print one path per line.
func TrimOutput(s string) string {
	return strings.TrimRight(s, "\r\n")
}
