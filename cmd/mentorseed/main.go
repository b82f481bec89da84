package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mentorbridge/seeder/internal/config"
	"github.com/mentorbridge/seeder/internal/store"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "mentorseed",
		Short: "MentorBridge seeder — populate a development database with sample data",
		Long:  "mentorseed generates internally consistent sample organizations, people, mentoring relationships, milestones, and interactions for MentorBridge development and testing.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A local .env may carry DATABASE_URL; missing file is fine.
			_ = godotenv.Load()
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		runCmd(),
		statsCmd(),
		healthCmd(),
		profilesCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newStore(ctx context.Context, logger *slog.Logger) (*store.PostgresStore, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("no database credentials: set DATABASE_URL or database.url in the config file")
	}
	return store.NewPostgresStore(ctx, cfg.Database.URL, logger)
}
