package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func decksCmd() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "decks [deck]",
		Short: "List content decks, or draw from a table with --table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if table != "" && len(args) == 0 {
				return fmt.Errorf("--table needs a deck")
			}

			return withApp(func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				if table == "" {
					names, err := a.provider.Content.Decks(ctx)
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(out, name)
					}
					return nil
				}

				results, err := a.provider.TableService.Draw(ctx, args[0], table)
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(out, "%s [%d]: %s\n", r.Table, r.Roll, r.Entry.Text)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table to draw once from")
	return cmd
}
