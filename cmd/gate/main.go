package main

import (
	"os"

	"github.com/gatetools/gate/cli"
	"github.com/gatetools/gate/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"gate",
		"Fast, declarative git hook runner",
	)

	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewInstallCmd())
	rootCmd.AddCommand(cmd.NewUninstallCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewListHooksCmd())
	rootCmd.AddCommand(cmd.NewSampleConfigCmd())
	rootCmd.AddCommand(cmd.NewCleanCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		handler := cli.NewErrorHandler(verbose)
		_ = handler.Handle(err)
		os.Exit(1)
	}
}
