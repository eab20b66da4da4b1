package main

import (
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cairn",
		Short:         "Cairn character forge and table tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(generateCmd())
	root.AddCommand(damageCmd())
	root.AddCommand(slotsCmd())
	root.AddCommand(restCmd())
	root.AddCommand(showCmd())
	root.AddCommand(decksCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
