package cmd

import (
	"fmt"
	"os"

	"github.com/gatetools/gate/git"
	"github.com/spf13/cobra"
)

func NewInstallCmd() *cobra.Command {
	var hookTypes []string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the gate shim into the repository's git hooks",
		Long: `Write a small shell shim into .git/hooks so git invokes gate on each
commit. Existing hooks that were not written by gate are backed up and
restored on uninstall.

Examples:
  # Install the pre-commit hook
  gate install

  # Install pre-commit and pre-push hooks
  gate install --hook-type pre-commit --hook-type pre-push`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := git.GetGitRoot(cwd)
			if err != nil {
				return err
			}

			gateBinary, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to locate gate binary: %w", err)
			}

			manager := git.NewHookManager(gateBinary)
			if err := manager.InstallHooks(cmd.Context(), root, hookTypes); err != nil {
				return err
			}

			for _, t := range hookTypes {
				fmt.Fprintf(cmd.OutOrStdout(), "gate installed at .git/hooks/%s\n", t)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hookTypes, "hook-type", git.DefaultHookTypes,
		"Git hook types to install: pre-commit, pre-push")

	return cmd
}
