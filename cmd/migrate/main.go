package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"marketplace/config"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run marketplace database migrations",
	Long: `migrate applies the embedded goose migrations to the configured
PostgreSQL database.

Commands:
  up      Apply all pending migrations
  down    Roll back the most recent migration
  status  Print the state of every migration`,
	SilenceUsage: true,
}

func init() {
	for _, command := range []postgres.MigrateCommand{
		postgres.MigrateUp,
		postgres.MigrateDown,
		postgres.MigrateStatus,
	} {
		rootCmd.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: fmt.Sprintf("Run goose %s", command),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), command)
			},
		})
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command postgres.MigrateCommand) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	logger.Info("Running migrations", slog.String("command", string(command)))

	return postgres.Migrate(ctx, sqlDB, logger, command)
}
