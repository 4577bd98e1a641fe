package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reputaai/reputaai/internal/interfaces/cli/migrate"
	"github.com/reputaai/reputaai/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reputaai",
		Short: "ReputaAI - review reputation management backend",
		Long:  `ReputaAI syncs Google Business Profile reviews, automates replies and alerts, and runs review-request campaigns.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
