package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"quiz-master/internal/config"
	"quiz-master/internal/database"
	"quiz-master/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the quiz-master database schema",
		SilenceUsage: true,
	}
	cmd.AddCommand(newUpCmd(), newDownCmd(), newVersionCmd())
	return cmd
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m database.Migrator) error {
				return m.Up(ctx)
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withMigrator(cmd.Context(), func(ctx context.Context, m database.Migrator) error {
				return m.Down(ctx, steps)
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m database.Migrator) error {
				version, dirty, err := m.Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", version, dirty)
				return nil
			})
		},
	}
}

// withMigrator loads config, connects and hands fn a migrator for the
// configured driver.
func withMigrator(ctx context.Context, fn func(ctx context.Context, m database.Migrator) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := database.NewMigrator(db, cfg.DB.Driver)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Get().Warn("Failed to close migrator", zap.Error(cerr))
		}
	}()

	if err := fn(ctx, m); err != nil {
		logger.Get().Error("Migration command failed", zap.String("driver", cfg.DB.Driver), zap.Error(err))
		return err
	}
	return nil
}
