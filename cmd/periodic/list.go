package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/helixml/periodic"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/console"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for list.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func listCmd(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "Print every row of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dataset.ParseKind(args[0])
			if err != nil {
				return err
			}
			switch output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("%w: unknown output %q", dataset.ErrInvalidArgument, output)
			}

			client, _, err := g.open(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeClient(client)

			return list(cmd.Context(), client, kind, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json, yaml")

	return cmd
}

func list(ctx context.Context, client *periodic.Client, kind dataset.Kind, output string, w io.Writer) error {
	var (
		resources []*jsonapi.Resource
		render    func() error
	)

	q := client.Query
	switch kind {
	case dataset.KindState:
		rows, err := q.ListStates(ctx)
		if err != nil {
			return err
		}
		resources = jsonapi.Resources(rows, jsonapi.StateResource)
		render = func() error { return console.RenderStates(w, rows) }
	case dataset.KindSeries:
		rows, err := q.ListSeries(ctx)
		if err != nil {
			return err
		}
		resources = jsonapi.Resources(rows, jsonapi.SeriesResource)
		render = func() error { return console.RenderSeries(w, rows) }
	case dataset.KindElement:
		rows, err := q.ListElements(ctx)
		if err != nil {
			return err
		}
		resources = jsonapi.Resources(rows, jsonapi.ElementResource)
		render = func() error { return console.RenderElements(w, rows) }
	case dataset.KindCompound:
		rows, err := q.ListCompounds(ctx)
		if err != nil {
			return err
		}
		resources = jsonapi.Resources(rows, jsonapi.CompoundResource)
		render = func() error { return console.RenderCompounds(w, rows) }
	case dataset.KindComposition:
		rows, err := q.ListCompositions(ctx)
		if err != nil {
			return err
		}
		resources = jsonapi.Resources(rows, jsonapi.CompositionResource)
		render = func() error { return console.RenderCompositions(w, rows) }
	default:
		return fmt.Errorf("%w: unknown kind %q", dataset.ErrInvalidArgument, kind)
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonapi.NewListResponse(resources))
	case outputYAML:
		return encodeYAML(w, jsonapi.NewListResponse(resources))
	}
	return render()
}

// encodeYAML writes v as YAML using its JSON field names.
func encodeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
