package command

import (
	"context"
	"os/exec"
)

// Executor abstracts exec.Cmd construction. Every subprocess gate spawns
// (git plumbing, hook entry commands) goes through a SafeBuilder and its
// Executor, so tests can capture invocations without running anything.
type Executor interface {
	// Command returns a command for the given program and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext returns a command bound to ctx, which carries the
	// builder's timeout.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor builds commands straight from os/exec. It is the executor
// behind every SafeBuilder outside of tests.
type RealExecutor struct{}

func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
