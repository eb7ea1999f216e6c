package cmd

import (
	"fmt"
	"os"

	"github.com/gatetools/gate/git"
	"github.com/spf13/cobra"
)

func NewUninstallCmd() *cobra.Command {
	var hookTypes []string

	cmd := &cobra.Command{
		Use:          "uninstall",
		Short:        "Remove the gate shim from the repository's git hooks",
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
			if err := manager.UninstallHooks(cmd.Context(), root, hookTypes); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "gate hooks removed")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hookTypes, "hook-type", git.DefaultHookTypes,
		"Git hook types to uninstall: pre-commit, pre-push")

	return cmd
}
