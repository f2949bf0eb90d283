package main

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return err
			}
			manPage = manPage.WithSection("Environment",
				"Every setting can also be given as a TEAMINFO_ prefixed environment variable,\n"+
					"for example TEAMINFO_KEY, TEAMINFO_TEAMS or TEAMINFO_RATE_INTERVAL.\n"+
					"Flags take precedence over the environment, which takes precedence over --config.")
			fmt.Fprintln(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
			return nil
		},
	}
}
