package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func statement() (string, int64) {
	return `SELECT * FROM "books"`, 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("conn reset"), want: "Query failed"},
		{name: "not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow", elapsed: time.Second, want: "Slow query"},
		{name: "fast quiet outside debug", want: ""},
		{name: "fast in debug", debug: true, want: "msg=Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(bufferLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "rows=2")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(bufferLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), bufferLogger(&scoped).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), statement, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestReportPoolWaits(t *testing.T) {
	tests := []struct {
		name   string
		waits  int64
		waited time.Duration
		want   string
	}{
		{name: "no waits", want: ""},
		{name: "short waits", waits: 2, waited: 10 * time.Millisecond, want: "level=DEBUG"},
		{name: "long waits", waits: 2, waited: time.Second, want: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cur := sql.DBStats{WaitCount: tt.waits, WaitDuration: tt.waited, MaxOpenConnections: 10}

			reportPoolWaits(context.Background(), bufferLogger(&buf), sql.DBStats{}, cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "waits=2")
		})
	}
}
