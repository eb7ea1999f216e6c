package cmd

import (
	"fmt"
	"os"

	"github.com/gatetools/gate/cli"
	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/schema"
	"github.com/spf13/cobra"
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Check the configuration file against the JSON Schema and the semantic
rules (unique hook ids, compilable regexes, pinned revisions for remote
repositories). Exits non-zero when the configuration is invalid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			path, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			if path == "" {
				return errors.ConfigNotFound(config.ConfigFileNames[0])
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// Schema validation catches shape errors including unknown keys.
			validator, err := schema.NewValidator()
			if err != nil {
				return err
			}
			if err := validator.ValidateYAML(data); err != nil {
				return err
			}

			// Semantic validation.
			if _, err := config.LoadFromBytes(data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		},
	}

	return cmd
}
