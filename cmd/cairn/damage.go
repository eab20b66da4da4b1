package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/damage"
)

func damageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "damage <amount> <actor-id>...",
		Short: "Apply a hit to one or more stored actors (requires REDIS_URL)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("damage must be a whole number: %w", err)
			}

			return withActorStore(func(ctx context.Context, a *app) error {
				return runDamage(ctx, a.provider.DamageService, cmd.OutOrStdout(), amount, args[1:])
			})
		},
	}
	return cmd
}

// runDamage prints one summary line per target. The full narration goes
// through the notifier.
func runDamage(ctx context.Context, svc damage.Service, out io.Writer, amount int, targetIDs []string) error {
	outcomes, err := svc.ApplyToTargets(ctx, targetIDs, amount)
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		fmt.Fprintf(out, "%s: %d after armor, HP %d -> %d, STR %d -> %d (%s)\n",
			o.Name, o.Result.MitigatedDamage,
			o.HPBefore, o.Result.NewHP,
			o.STRBefore, o.Result.NewSTR,
			o.Consequence)
	}
	return err
}
