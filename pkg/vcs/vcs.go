// Package vcs wraps the external tool invocations of the setup flow:
// git repository initialization and pre-commit hook installation.
package vcs

import (
	"context"
	"errors"
	osexec "os/exec"
	"strings"

	imperrors "github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/exec"
	"github.com/templatekit/imprint/pkg/logging"
)

// InitRepo runs "git init" in the project root.
func InitRepo(ctx context.Context, runner exec.CommandRunner, root string) error {
	return run(ctx, runner, root, "git", "init")
}

// InstallHooks runs "pre-commit install" in the project root.
func InstallHooks(ctx context.Context, runner exec.CommandRunner, root string) error {
	return run(ctx, runner, root, "pre-commit", "install")
}

// run executes one tool invocation and maps the outcome to coded
// errors: tool missing, spawn failure, or non-zero exit.
func run(ctx context.Context, runner exec.CommandRunner, root, name string, args ...string) error {
	logger := logging.GetLogger("vcs")

	result, err := runner.Run(ctx, name, args, exec.RunOpts{Dir: root})
	if err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			return imperrors.Wrapf(err, imperrors.ErrCommandNotFound,
				"%s is not installed", name)
		}
		return imperrors.Wrapf(err, imperrors.ErrCommandRun,
			"failed to run %s", name)
	}

	if result.ExitCode != 0 {
		logger.Debug().
			Str("command", name).
			Int("exitCode", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Tool exited non-zero")
		return imperrors.Newf(imperrors.ErrCommandRun,
			"%s exited with status %d", name, result.ExitCode).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}

	return nil
}
