package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obsidion",
	Short: "Obsidion, a Minecraft themed Discord bot",
	Long: `Obsidion answers fun Minecraft commands and keeps per-server settings
such as the command prefix, language, news channels and RCON credentials.

Run without arguments to start the bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvironment()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context())
	},
}

// loadEnvironment reads an optional .env file and configures logging
func loadEnvironment() error {
	// a missing .env is normal in containers
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	setupLogging(os.Getenv("LOG_LEVEL"), os.Getenv("ENVIRONMENT"))
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd, migrateCmd, versionCmd)
}

// Execute runs the command line until it finishes or the process is
// interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
