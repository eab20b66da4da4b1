package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/generator"
)

func generateCmd() *cobra.Command {
	var owner string
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Roll up new characters with their starting gear",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			return withApp(func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				for i := 0; i < count; i++ {
					result, err := a.provider.GeneratorService.Generate(ctx, &generator.GenerateInput{OwnerID: owner})
					if err != nil {
						return err
					}
					if i > 0 {
						fmt.Fprintln(out)
					}
					printMessage(out, notify.CharacterAnnouncement(result.Character, result.Companions))
					fmt.Fprintf(out, "id: %s\n", result.Character.ID)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "player ID the characters belong to")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of characters to generate")
	return cmd
}
