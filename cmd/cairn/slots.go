package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/encumbrance"
)

func slotsCmd() *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "slots [actor-id]",
		Short: "Break down slot usage for an actor or for --item costs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				parsed, err := parseItemCosts(items)
				if err != nil {
					return err
				}
				if len(parsed) == 0 {
					return fmt.Errorf("pass an actor ID or at least one --item")
				}
				printSlots(cmd.OutOrStdout(), parsed)
				return nil
			}

			return withActorStore(func(ctx context.Context, a *app) error {
				actor, err := a.provider.CharacterService.Get(ctx, args[0])
				if err != nil {
					return err
				}
				printSlots(cmd.OutOrStdout(), actor.Items)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "item cost as SLOTS or SLOTSxQTY, e.g. 0.1x10")
	return cmd
}

// parseItemCosts reads "0.1x10" style costs
func parseItemCosts(specs []string) ([]*entities.Item, error) {
	out := make([]*entities.Item, 0, len(specs))
	for i, spec := range specs {
		slotsText, qtyText, hasQty := strings.Cut(spec, "x")

		slots, err := strconv.ParseFloat(slotsText, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", spec, err)
		}
		if err := encumbrance.ValidateSlots(slots); err != nil {
			return nil, fmt.Errorf("item %q: %w", spec, err)
		}

		qty := 1
		if hasQty {
			if qty, err = strconv.Atoi(qtyText); err != nil {
				return nil, fmt.Errorf("item %q: %w", spec, err)
			}
			if qty < 0 {
				return nil, fmt.Errorf("item %q: quantity cannot be negative", spec)
			}
		}
		out = append(out, &entities.Item{Name: "item " + strconv.Itoa(i+1), Slots: slots, Quantity: qty})
	}
	return out, nil
}

func printSlots(w io.Writer, items []*entities.Item) {
	for _, item := range items {
		fmt.Fprintf(w, "%-20s %6.3f x%-3d = %s\n",
			item.Name, item.Slots, item.Count(),
			strconv.FormatFloat(float64(encumbrance.MilliSlots(item))/encumbrance.MilliSlotsPerSlot, 'f', -1, 64))
	}
	summary := encumbrance.Recompute(items)
	fmt.Fprintf(w, "Total: %s", notify.FormatSlots(summary.SlotsUsed))
	if summary.Encumbered {
		fmt.Fprint(w, " (encumbered)")
	}
	fmt.Fprintln(w)
}
