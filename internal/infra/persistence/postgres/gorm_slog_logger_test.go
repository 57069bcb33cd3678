package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"salesinsight/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(logger, cfg).(*gormSlogLogger), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlAndRows := func() (string, int64) { return "SELECT * FROM products", 3 }

	t.Run("debug logs every query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
		assert.Contains(t, buf.String(), "SELECT * FROM products")
	})

	t.Run("quiet without debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failures are errors", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("relation \"products\" does not exist"))

		assert.Contains(t, buf.String(), `"msg":"GORM query failed"`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM slow query"`)
	})
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	l, buf := newBufferedGormLogger(true)
	long := "INSERT INTO sale_records VALUES " + strings.Repeat("(?),", 2000)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return long, 2000 }, nil)

	assert.Contains(t, buf.String(), "…")
	assert.Less(t, buf.Len(), len(long))
}
