package sacct

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	"saqd/config"
	"saqd/internal/pkg/client/sacct/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// helper: build fake exec that returns output based on args
func fakeExec(outputFn func(name string, args ...string) string) ExecCommandFunc {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		// Use sh -c to emit prebuilt content
		script := fmt.Sprintf("cat <<'EOF'\n%s\nEOF\n", outputFn(name, args...))
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
}

func TestRecentJobs_ParsesOutput(t *testing.T) {
	sample := "123|myjob|alice|COMPLETED|00:10:00|node[1-2]|16\n456|other|bob|FAILED|00:00:30|node3|1"

	c := New(config.Sacct{}, testLogger()).WithExecCommand(fakeExec(func(name string, args ...string) string {
		if name != "sacct" {
			t.Errorf("command = %q, want sacct", name)
		}
		return sample
	}))

	jobs, err := c.RecentJobs(context.Background(), &Options{User: "alice", RecentHours: 2})
	if err != nil {
		t.Fatalf("RecentJobs error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "123" || jobs[0].State != models.StateCompleted || jobs[0].CPUs != 16 {
		t.Errorf("first job = %+v", jobs[0])
	}
	if jobs[1].ID != "456" || jobs[1].State != models.StateFailed {
		t.Errorf("second job = %+v", jobs[1])
	}
}

func TestRecentJobs_EmptyOutput(t *testing.T) {
	c := New(config.Sacct{}, testLogger()).WithExecCommand(fakeExec(func(name string, args ...string) string {
		return ""
	}))
	jobs, err := c.RecentJobs(context.Background(), &Options{})
	if err != nil {
		t.Fatalf("RecentJobs error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(jobs))
	}
}

func TestRecentJobs_NonZeroExitReturnsCommandError(t *testing.T) {
	c := New(config.Sacct{}, testLogger()).WithExecCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "echo 'sacct: error: slurmdbd unreachable' >&2; exit 1")
	})

	_, err := c.RecentJobs(context.Background(), &Options{})
	var cerr *CommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if cerr.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", cerr.ExitCode)
	}
	if cerr.Stderr != "sacct: error: slurmdbd unreachable" {
		t.Errorf("Stderr = %q", cerr.Stderr)
	}
}

func TestRecentJobs_LaunchFailureReturnsError(t *testing.T) {
	c := New(config.Sacct{Bin: "/nonexistent/sacct"}, testLogger())

	_, err := c.RecentJobs(context.Background(), &Options{})
	if err == nil {
		t.Fatal("expected an error for missing binary")
	}
	var cerr *CommandError
	if errors.As(err, &cerr) {
		t.Fatalf("launch failure must not be a *CommandError, got %v", err)
	}
}

func TestRecentJobs_CancelledContextKillsProcess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(config.Sacct{}, testLogger()).WithExecCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sleep", "60")
	})

	_, err := c.RecentJobs(ctx, &Options{})
	if err == nil {
		t.Fatal("expected an error when the context is already cancelled")
	}
}
