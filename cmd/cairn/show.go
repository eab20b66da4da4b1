package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
)

func showCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "show [actor-id]",
		Short: "Print an actor, or every actor of --owner (requires REDIS_URL)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (owner == "") {
				return fmt.Errorf("pass either an actor ID or --owner")
			}

			return withActorStore(func(ctx context.Context, a *app) error {
				var list []*entities.Actor
				if owner != "" {
					found, err := a.provider.CharacterService.ListByOwner(ctx, owner)
					if err != nil {
						return err
					}
					list = found
				} else {
					actor, err := a.provider.CharacterService.Get(ctx, args[0])
					if err != nil {
						return err
					}
					list = append(list, actor)
				}

				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No actors found.")
				}
				for _, actor := range list {
					printActor(out, actor)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "list every actor of this player")
	return cmd
}
