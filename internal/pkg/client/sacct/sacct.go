package sacct

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"saqd/config"
	"saqd/internal/pkg/client/sacct/models"
)

// Package-level default Client for convenience wiring.
var defaultClient *Client

// SetDefault sets the package-level default sacct Client.
func SetDefault(c *Client) { defaultClient = c }

// Default returns the package-level default sacct Client.
func Default() *Client { return defaultClient }

// ExecCommandFunc 定义 exec.CommandContext 的函数签名，方便 mock 测试.
type ExecCommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// CommandError reports that sacct ran but exited with a failure status.
// Stderr carries the tool's own diagnostic, trimmed.
type CommandError struct {
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("sacct failed: %s", e.Stderr)
}

// Client queries Slurm accounting through the sacct command.
type Client struct {
	execCommand  ExecCommandFunc
	logger       *slog.Logger
	bin          string
	defaultHours uint32
}

// New creates a Client from config.Sacct. An empty bin falls back to
// resolving "sacct" on PATH.
func New(cfg config.Sacct, logger *slog.Logger) *Client {
	bin := cfg.Bin
	if bin == "" {
		bin = "sacct"
	}
	return &Client{
		execCommand:  exec.CommandContext,
		logger:       logger,
		bin:          bin,
		defaultHours: cfg.RecentHours,
	}
}

// DefaultRecentHours is the configured lookback for requests that do not
// carry one. May be 0; Options clamps to a one-hour minimum either way.
func (c *Client) DefaultRecentHours() uint32 { return c.defaultHours }

// WithExecCommand replaces the process spawner, for tests.
func (c *Client) WithExecCommand(exec ExecCommandFunc) *Client {
	c.execCommand = exec
	return c
}

// RecentJobs runs sacct with the arguments derived from opts and parses
// its output into job records. The call returns only after the process has
// exited; cancelling ctx kills the process.
//
// Failures to launch the command are returned as-is; a non-zero exit is
// returned as *CommandError with the trimmed stderr attached. Malformed
// output lines are never fatal (see parseOutput).
func (c *Client) RecentJobs(ctx context.Context, opts *Options) (models.Jobs, error) {
	args := opts.ToArgs()
	cmd := c.execCommand(ctx, c.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr := &CommandError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
			c.logger.Error("sacct exited with failure", "cmd", cmd.String(), "exit_code", cerr.ExitCode, "stderr", cerr.Stderr)
			return nil, cerr
		}
		c.logger.Error("failed to start sacct", "cmd", cmd.String(), "err", err)
		return nil, err
	}

	// Parse with the caller's original field list; parseOutput recomputes
	// the dedup-and-default step itself so both sides agree on columns.
	jobs := parseOutput(stdout.String(), opts.FormatFields)
	c.logger.Debug("sacct query completed", "args", strings.Join(args, " "), "jobs", len(jobs))
	return jobs, nil
}
