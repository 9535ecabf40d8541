package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"go.uber.org/zap"
)

type Command struct {
	Name string
	Args []string
	// Dir is the working directory, empty means the current one.
	Dir string
}

// String is for display only, the command itself never goes through a shell.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

type ExecutionError struct {
	Command Command
	Result  CommandResult
	Err     error
}

func (e *ExecutionError) Error() string {
	if msg := strings.TrimSpace(e.Result.Stderr); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(e.Result.Stdout); msg != "" {
		return msg
	}
	if e.Err != nil {
		return fmt.Sprintf("error executing %s: %s", e.Command, e.Err)
	}
	return fmt.Sprintf("error executing %s: exit status %d", e.Command, e.Result.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// ExecRunner starts the process directly and keeps its output to itself.
type ExecRunner struct {
	Logger *zap.Logger
}

func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("executing command", zap.Stringer("command", c), zap.String("dir", c.Dir))
	err := cmd.Run()

	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			err = nil
		} else {
			result.ExitCode = -1
		}
		r.Logger.Debug("command failed",
			zap.Stringer("command", c),
			zap.Int("exitCode", result.ExitCode),
			zap.String("stderr", result.Stderr),
			zap.Error(err),
		)
		return result, &ExecutionError{Command: c, Result: result, Err: err}
	}

	r.Logger.Debug("command finished", zap.Stringer("command", c))
	return result, nil
}
