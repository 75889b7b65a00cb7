package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// MigrateCommand selects the goose operation run by Migrate.
type MigrateCommand string

const (
	MigrateUp     MigrateCommand = "up"
	MigrateDown   MigrateCommand = "down"
	MigrateStatus MigrateCommand = "status"
)

// Migrate runs the embedded goose migrations against db.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger, command MigrateCommand) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, ".")
	case MigrateDown:
		err = goose.DownContext(ctx, db, ".")
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, ".")
	default:
		return errors.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return errors.Wrapf(err, "goose %s failed", command)
	}

	return nil
}

// gooseSlogLogger routes goose output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error("goose", slog.String("message", fmt.Sprintf(format, v...)))
}
