// Package sevenzip invokes the external 7-Zip binary and decodes its output.
//
// Every invocation is synchronous: Run blocks until the subprocess exits.
// No timeout is imposed here; callers that need cancellation pass a
// cancellable context. The package deliberately knows nothing about archive
// semantics - it only spawns the tool, captures both output streams and
// reports the exit code.
package sevenzip

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"go.uber.org/zap"
)

// Result holds the raw outcome of a single 7-Zip invocation.
// Stdout and Stderr are undecoded bytes; use Decode before showing them
// to a human.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the tool exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner spawns the 7-Zip binary for each call.
type CommandRunner struct {
	binary string
	log    *zap.Logger
}

// NewCommandRunner creates a runner for the given 7-Zip binary path.
func NewCommandRunner(binary string, log *zap.Logger) *CommandRunner {
	if binary == "" {
		panic("binary is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &CommandRunner{binary: binary, log: log}
}

// Run invokes the binary with args and waits for it to exit.
// A non-zero exit status is NOT an error here: the caller inspects
// Result.ExitCode. The returned error is reserved for spawn failures.
func (c *CommandRunner) Run(ctx context.Context, args []string) (*Result, error) {
	return c.run(ctx, nil, args)
}

// RunWithInput is Run with the subprocess stdin connected to stdin.
// 7-Zip's -si flag reads archive member content from standard input.
func (c *CommandRunner) RunWithInput(ctx context.Context, stdin io.Reader, args []string) (*Result, error) {
	return c.run(ctx, stdin, args)
}

func (c *CommandRunner) run(ctx context.Context, stdin io.Reader, args []string) (*Result, error) {
	c.log.Debug("executing 7-Zip command", zap.String("binary", c.binary), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			c.log.Error("failed to execute 7-Zip command", zap.Error(err))
			return nil, &StartError{Binary: c.binary, Cause: err}
		}
		exitCode = exitErr.ExitCode()
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode,
	}, nil
}
