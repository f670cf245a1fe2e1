package main

import (
	"github.com/helixml/periodic/infrastructure/console"
	"github.com/spf13/cobra"
)

func schemaCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create or drop the dataset tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create every table that does not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := g.open(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeClient(client)

			outcomes, err := client.Schema.EnsureAll(cmd.Context())
			if renderErr := console.RenderOutcomes(cmd.OutOrStdout(), outcomes); renderErr != nil && err == nil {
				err = renderErr
			}
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "drop",
		Short: "Drop every table, children first",
		Long: `Drop every table, children first. A table that cannot be dropped is
reported with its reason and the remaining tables are still attempted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := g.open(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeClient(client)

			return console.RenderOutcomes(cmd.OutOrStdout(), client.Schema.DropAll(cmd.Context()))
		},
	})

	return cmd
}
