package cmd

import (
	"fmt"

	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/store"
	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "clean",
		Short:        "Remove cached hook repositories",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			cacheDir, err := settings.ResolveCacheDir()
			if err != nil {
				return err
			}

			s := store.NewStore(cacheDir)
			if err := s.Clean(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", s.Root())
			return nil
		},
	}
}
