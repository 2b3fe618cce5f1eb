package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"voiceauth/config"
	deliverycontext "voiceauth/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func staticSQL(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_DropsBoundValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{})

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM accounts WHERE email = $1", "ada@example.com")

	assert.Equal(t, "SELECT * FROM accounts WHERE email = $1", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferedLogger(slog.LevelDebug)
	reqLogger, reqBuf := newBufferedLogger(slog.LevelDebug)
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = 100 * time.Millisecond

	l := newGormSlogLogger(base, cfg)
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now().Add(-time.Second), staticSQL("SELECT 1"), nil)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "GORM slow query")
	assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "query error", elapsed: time.Millisecond, err: assert.AnError, want: "GORM query failed"},
		{name: "record not found is quiet", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query outside debug", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferedLogger(slog.LevelDebug)
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			cfg.Database.SlowQueryThreshold = 200 * time.Millisecond

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), staticSQL("SELECT 1"), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	base, buf := newBufferedLogger(slog.LevelDebug)
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), staticSQL("SELECT 1"), assert.AnError)
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
