package main

import (
	"os/signal"
	"syscall"

	"github.com/helixml/periodic/infrastructure/console"
	"github.com/spf13/cobra"
)

func menuCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, _, err := g.open(ctx, nil)
			if err != nil {
				return err
			}
			defer closeClient(client)

			return console.NewMenu(client, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}
}
