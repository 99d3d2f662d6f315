package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(level)
	return log, &buf
}

func query() (string, int64) { return `SELECT * FROM "shipments"`, 3 }

func TestGormLoggerTrace(t *testing.T) {
	log, buf := newTestLogger(logrus.DebugLevel)
	l := NewGormLogger(log)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), query, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "query failed")

	buf.Reset()
	l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "slow query")
}

func TestGormLoggerSilent(t *testing.T) {
	log, buf := newTestLogger(logrus.DebugLevel)
	l := NewGormLogger(log).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)
	assert.Empty(t, buf.String())
}

func TestGormLoggerDefaultLevel(t *testing.T) {
	log, buf := newTestLogger(logrus.InfoLevel)
	l := NewGormLogger(log)

	l.Info(context.Background(), "migrated %s", "shipments")
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "slow %s", "migration")
	assert.Contains(t, buf.String(), "slow migration")
}
