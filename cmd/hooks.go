package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gatetools/gate/cli"
	"github.com/gatetools/gate/hook/builtin"
	"github.com/spf13/cobra"
)

// hookListing is the JSON shape of one configured hook.
type hookListing struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Stages []string `json:"stages"`
}

func NewListHooksCmd() *cobra.Command {
	var builtins bool

	cmd := &cobra.Command{
		Use:   "list-hooks",
		Short: "List the hooks configured for this repository",
		Long: `List every hook the configuration would run, with its source and the
stages it participates in. With --builtins, list the checks shipped
inside the gate binary instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			if builtins {
				for _, id := range builtin.IDs() {
					check, _ := builtin.Lookup(id)
					fmt.Fprintf(cmd.OutOrStdout(), "%-34s %s\n", id, check.Name)
				}
				return nil
			}

			cfg, err := loadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}

			var listings []hookListing
			for _, repo := range cfg.Repos {
				for _, h := range repo.Hooks {
					listings = append(listings, hookListing{
						ID:     h.ID,
						Name:   h.Name,
						Source: repo.Repo,
						Stages: h.Stages,
					})
				}
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(listings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			for _, l := range listings {
				fmt.Fprintf(cmd.OutOrStdout(), "%-34s %-20s [%s]\n",
					l.ID, sourceLabel(l.Source), strings.Join(l.Stages, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtins, "builtins", false, "List the builtin checks instead of the configured hooks")

	return cmd
}

// sourceLabel shortens remote URLs for the table output.
func sourceLabel(source string) string {
	if idx := strings.LastIndex(source, "/"); idx != -1 && idx < len(source)-1 {
		return strings.TrimSuffix(source[idx+1:], ".git")
	}
	return source
}
