package main

import (
	"os"

	"github.com/spf13/cobra"

	"minegate/internal/interfaces/cli/bot"
	"minegate/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minegate",
		Short: "Minegate - Telegram whitelist and support bot",
		Long:  `Minegate runs the Telegram bot that collects whitelist applications, relays support tickets and drives the admin review workflow for a community Minecraft server.`,
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
