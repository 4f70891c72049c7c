package worker

import (
	"errors"
	"strings"
	"testing"
)

func TestRunReturnsValue(t *testing.T) {
	got, err := Run(nil, func() (string, error) {
		return "C:\\picked", nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "C:\\picked" {
		t.Errorf("Expected C:\\picked, got %q", got)
	}
}

func TestRunOrdersSetupJobTeardown(t *testing.T) {
	var steps []string
	setup := func() (func(), error) {
		steps = append(steps, "setup")
		return func() { steps = append(steps, "teardown") }, nil
	}

	_, err := Run(setup, func() (int, error) {
		steps = append(steps, "job")
		return 1, nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := strings.Join(steps, ","); got != "setup,job,teardown" {
		t.Errorf("Expected setup,job,teardown, got %s", got)
	}
}

func TestRunSetupErrorSkipsJob(t *testing.T) {
	setupErr := errors.New("apartment unavailable")
	jobRan := false

	_, err := Run(func() (func(), error) { return nil, setupErr }, func() ([]string, error) {
		jobRan = true
		return nil, nil
	})
	if !errors.Is(err, setupErr) {
		t.Fatalf("Expected setup error, got %v", err)
	}
	if jobRan {
		t.Error("Expected job to be skipped after setup failure")
	}
}

func TestRunJobError(t *testing.T) {
	jobErr := errors.New("invariant violated")
	tornDown := false
	setup := func() (func(), error) {
		return func() { tornDown = true }, nil
	}

	_, err := Run(setup, func() (string, error) { return "", jobErr })
	if !errors.Is(err, jobErr) {
		t.Fatalf("Expected job error, got %v", err)
	}
	if !tornDown {
		t.Error("Expected teardown after job error")
	}
}

func TestRunRecoversPanic(t *testing.T) {
	tornDown := false
	setup := func() (func(), error) {
		return func() { tornDown = true }, nil
	}

	_, err := Run(setup, func() (string, error) { panic("boom") })
	if !errors.Is(err, ErrPanicked) {
		t.Fatalf("Expected ErrPanicked, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected panic value in error, got %v", err)
	}
	if !tornDown {
		t.Error("Expected teardown to run before panic is reported")
	}
}
