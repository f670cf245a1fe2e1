package main

import (
	"errors"
	"fmt"

	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/console"
	"github.com/spf13/cobra"
)

func loadCmd(g *globals) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load <kind|all>",
		Short: "Load a CSV source into its table",
		Long: `Load a CSV source into its table. Kinds: states, series, elements,
compounds, compositions. "all" loads every kind in dependency order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "all" && file != "" {
				return errors.New("--file cannot be used with all")
			}
			var kind dataset.Kind
			if args[0] != "all" {
				k, err := dataset.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}

			client, _, err := g.open(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeClient(client)

			var results []service.LoadResult
			switch {
			case kind == "":
				results, err = client.LoadAll(cmd.Context())
			case file != "":
				var r service.LoadResult
				r, err = client.LoadFile(cmd.Context(), kind, file)
				results = append(results, r)
			default:
				var r service.LoadResult
				r, err = client.LoadKind(cmd.Context(), kind)
				results = append(results, r)
			}

			for _, r := range results {
				if r.Kind == "" {
					continue
				}
				if renderErr := console.RenderLoad(cmd.OutOrStdout(), r); renderErr != nil {
					return renderErr
				}
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read this file instead of the configured source")

	return cmd
}
