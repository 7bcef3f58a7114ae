package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("build cache updated")
	log.Warn("cache record unreadable")
	log.Error(zerr.New("save failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "build cache updated")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "cache record unreadable")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "save failed")
}
