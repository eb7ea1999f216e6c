package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const hookScriptTemplate = `#!/bin/sh
# gate git hook - {{.HookType}}
# Auto-generated, do not edit directly

GATE_BIN="{{.GateBinary}}"

if ! command -v "$GATE_BIN" >/dev/null 2>&1; then
    echo "gate not found. Skipping {{.HookType}} hook." >&2
    exit 0
fi

exec "$GATE_BIN" run --hook-stage {{.HookType}}
`

// DefaultHookTypes lists the git hooks gate installs by default.
var DefaultHookTypes = []string{"pre-commit"}

// SupportedHookTypes lists every git hook gate can manage.
var SupportedHookTypes = []string{"pre-commit", "pre-push"}

// HookManager installs and removes the gate shim scripts in .git/hooks.
type HookManager struct {
	gateBinary string
}

// Ensure it implements the interface
var _ HookProvider = (*HookManager)(nil)

// NewHookManager creates a new hook manager
func NewHookManager(gateBinary string) *HookManager {
	if gateBinary == "" {
		gateBinary = "gate"
	}
	return &HookManager{
		gateBinary: gateBinary,
	}
}

// InstallHooks installs gate shim scripts for the given hook types.
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string, hookTypes []string) error {
	hooksDir, err := HooksDir(repoPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	if len(hookTypes) == 0 {
		hookTypes = DefaultHookTypes
	}

	for _, hookType := range hookTypes {
		if err := m.installHook(hooksDir, hookType); err != nil {
			return fmt.Errorf("install %s hook: %w", hookType, err)
		}
	}

	return nil
}

// UninstallHooks removes gate shim scripts, restoring any backed-up hooks.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) error {
	hooksDir, err := HooksDir(repoPath)
	if err != nil {
		return err
	}

	if len(hookTypes) == 0 {
		hookTypes = SupportedHookTypes
	}

	for _, hookType := range hookTypes {
		hookPath := filepath.Join(hooksDir, hookType)

		// Only remove hooks gate wrote
		if !m.isGateHook(hookPath) {
			continue
		}
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s hook: %w", hookType, err)
		}

		// Restore a backed-up hook if one exists
		backupPath := hookPath + ".pre-gate"
		if _, err := os.Stat(backupPath); err == nil {
			if err := os.Rename(backupPath, hookPath); err != nil {
				return fmt.Errorf("restore %s hook backup: %w", hookType, err)
			}
		}
	}

	return nil
}

// installHook installs a single git hook shim
func (m *HookManager) installHook(hooksDir, hookType string) error {
	hookPath := filepath.Join(hooksDir, hookType)

	// Back up a foreign hook before overwriting it
	if _, err := os.Stat(hookPath); err == nil {
		if !m.isGateHook(hookPath) {
			backupPath := hookPath + ".pre-gate"
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	}

	tmpl, err := template.New(hookType).Parse(hookScriptTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		HookType   string
		GateBinary string
	}{
		HookType:   hookType,
		GateBinary: m.gateBinary,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isGateHook checks if a hook file is managed by gate
func (m *HookManager) isGateHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte("gate git hook"))
}
