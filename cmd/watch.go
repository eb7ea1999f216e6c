package cmd

import (
	"fmt"
	"os"

	"github.com/gatetools/gate/cli"
	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/git"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/runner"
	"github.com/gatetools/gate/store"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run hooks whenever files change",
		Long: `Watch the repository and re-run the configured hooks against each file
as it changes. Useful while iterating on code or on hook configuration;
stop with Ctrl-C.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			cfg, err := loadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := git.GetGitRoot(cwd)
			if err != nil {
				return err
			}

			cacheDir, err := settings.ResolveCacheDir()
			if err != nil {
				return err
			}
			repoStore := store.NewStore(cacheDir)

			reporter := cli.NewRunReporter(cmd.OutOrStdout(), useColor(settings))

			onChange := func(files []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "\n-- %v\n", files)
				r := runner.New(runner.Options{
					RepoRoot: root,
					Config:   cfg,
					Settings: settings,
					Stage:    hook.StagePreCommit,
					Files:    files,
					Store:    repoStore,
					OnResult: reporter.Report,
				})
				if _, err := r.Run(cmd.Context()); err != nil {
					cli.PrintError(cmd, err)
				}
			}

			watcher, err := runner.NewWatcher(root, debounceMs, onChange)
			if err != nil {
				return err
			}
			defer watcher.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", root)
			watcher.Start(cmd.Context())
			return nil
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 200, "Milliseconds to collapse rapid change bursts")

	return cmd
}
