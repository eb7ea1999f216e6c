package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gatetools/gate/cli"
	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/git"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/runner"
	"github.com/gatetools/gate/store"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	var allFiles bool
	var files []string
	var stage string

	cmd := &cobra.Command{
		Use:   "run [hook-id]",
		Short: "Run configured hooks against the repository",
		Long: `Run the hooks configured in .gate.yaml. By default hooks run against
the files currently staged for commit; pass --all-files to check the
whole tree, or --files to name paths explicitly. An optional hook-id
argument restricts the run to a single hook.

Examples:
  # Run all pre-commit hooks against staged files
  gate run

  # Run everything against the whole repository
  gate run --all-files

  # Run a single hook
  gate run trailing-whitespace

  # Run the pre-push stage
  gate run --hook-stage pre-push`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
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

			runnerOpts := runner.Options{
				RepoRoot: root,
				Config:   cfg,
				Settings: settings,
				Stage:    stage,
				AllFiles: allFiles,
				Files:    files,
				Store:    store.NewStore(cacheDir),
			}
			if len(args) == 1 {
				runnerOpts.OnlyHook = args[0]
			}

			var reporter *cli.RunReporter
			if !opts.JSONOutput {
				reporter = cli.NewRunReporter(cmd.OutOrStdout(), useColor(settings))
				runnerOpts.OnResult = reporter.Report
			}

			summary, err := runner.New(runnerOpts).Run(cmd.Context())
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}

			if !summary.Ok() {
				return summaryError(summary)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allFiles, "all-files", false, "Run against all tracked files instead of staged ones")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Run against these files only")
	cmd.Flags().StringVar(&stage, "hook-stage", hook.StagePreCommit, "Git hook stage to run: pre-commit, pre-push, manual")

	return cmd
}

// summaryError converts a failed run summary into a typed error. A single
// failing hook keeps its id and exit code; multiple failures aggregate.
func summaryError(summary *hook.Summary) error {
	failed := summary.Failed()
	if len(failed) == 1 {
		for i := range summary.Results {
			if r := &summary.Results[i]; r.ID == failed[0] {
				return errors.HookFailed(r.ID, r.ExitCode)
			}
		}
	}
	return errors.HooksFailed(failed)
}

// loadConfig loads the project configuration, honoring an explicit
// --config path.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// useColor decides whether run output is colored: the user setting wins,
// otherwise a terminal on stdout enables it.
func useColor(settings *config.Settings) bool {
	switch settings.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
