package main

import (
	"context"

	"github.com/spf13/cobra"
)

func restCmd() *cobra.Command {
	var abilities bool

	cmd := &cobra.Command{
		Use:   "rest <actor-id>",
		Short: "Restore HP, or abilities with --abilities (requires REDIS_URL)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActorStore(func(ctx context.Context, a *app) error {
				svc := a.provider.CharacterService
				rest := svc.Rest
				if abilities {
					rest = svc.RestoreAbilities
				}
				actor, err := rest(ctx, args[0])
				if err != nil {
					return err
				}
				printActor(cmd.OutOrStdout(), actor)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&abilities, "abilities", false, "restore STR, DEX and WIL instead of HP")
	return cmd
}
