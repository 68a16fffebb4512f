package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, parseLevel("warning"))
	assert.Equal(t, ErrorLevel, parseLevel("error"))
	assert.Equal(t, InfoLevel, parseLevel("chatty"))
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap("warn", zap.New(core))

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("Error loading data:", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Error loading data: boom", entries[1].Message)
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap("debug", zap.New(core)).With(zap.String("component", "sheets"))

	l.Debug("fetching")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sheets", logs.All()[0].ContextMap()["component"])
}
