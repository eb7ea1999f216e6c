package errors

import (
	"fmt"
	"os/exec"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GateError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// HookNotFound creates a hook not found error
func HookNotFound(id string) *GateError {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not found", id)).
		WithDetail("hook", id)
}

// HookFailed creates a hook failure error
func HookFailed(id string, exitCode int) *GateError {
	return New(ErrCodeHookFailed, fmt.Sprintf("hook '%s' failed with exit code %d", id, exitCode)).
		WithDetail("hook", id).
		WithDetail("exitCode", exitCode)
}

// HooksFailed creates an aggregate failure error for a whole run
func HooksFailed(ids []string) *GateError {
	return New(ErrCodeHookFailed, fmt.Sprintf("%d hooks did not pass: %s", len(ids), strings.Join(ids, ", "))).
		WithDetail("failed", ids)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *GateError {
	gateErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		gateErr = gateErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return gateErr
}

// CommandTimedOut creates a command timeout error
func CommandTimedOut(cmd string) *GateError {
	return New(ErrCodeCommandTimeout, fmt.Sprintf("command timed out: %s", cmd)).
		WithDetail("command", cmd)
}

// GitNotInstalled creates a git-missing error
func GitNotInstalled() *GateError {
	return New(ErrCodeGitNotInstalled, "git is not installed or not on PATH")
}

// CloneFailed creates a repository clone failure error
func CloneFailed(repo string, err error) *GateError {
	return Wrap(err, ErrCodeGitCloneFailed, fmt.Sprintf("failed to clone hook repository %s", repo)).
		WithDetail("repo", repo)
}

// CheckoutFailed creates a revision checkout failure error
func CheckoutFailed(repo, rev string, err error) *GateError {
	return Wrap(err, ErrCodeGitCheckoutFail, fmt.Sprintf("failed to check out revision %s of %s", rev, repo)).
		WithDetail("repo", repo).
		WithDetail("rev", rev)
}

// NotARepo creates a not-a-git-repository error
func NotARepo(dir string) *GateError {
	return New(ErrCodeGitNotARepo, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("dir", dir)
}
