package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "reports" WHERE id = 1`, 1
}

func TestGormSlogLoggerTrace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Duration
		err     error
		want    string
		wantNot string
	}{
		{
			name:  "query failure",
			begin: time.Millisecond,
			err:   errors.New("relation does not exist"),
			want:  "GORM query failed",
		},
		{
			name:    "record not found is silent",
			begin:   time.Millisecond,
			err:     gorm.ErrRecordNotFound,
			wantNot: "GORM",
		},
		{
			name:  "slow query",
			begin: time.Second,
			want:  "GORM slow query",
		},
		{
			name:    "fast query without debug",
			begin:   time.Millisecond,
			wantNot: "GORM",
		},
		{
			name:  "fast query with debug",
			debug: true,
			begin: time.Millisecond,
			want:  "GORM query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			gl := newGormSlogLogger(newBufferLogger(&buf), cfg)

			gl.Trace(context.Background(), time.Now().Add(-tt.begin), sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLoggerUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	gl := newGormSlogLogger(newBufferLogger(&base), nil)

	reqLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	gl.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-42")
}

func TestGormSlogLoggerLogMode(t *testing.T) {
	var buf bytes.Buffer
	gl := newGormSlogLogger(newBufferLogger(&buf), nil)

	gl.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())

	gl.Warn(context.Background(), "kept %d", 2)
	assert.Contains(t, buf.String(), "kept 2")
}
