package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger struct {
	level  Level
	logger *zap.Logger
}

func New(levelStr string) *Logger {
	level := parseLevel(levelStr)

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level.zapLevel())
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.OutputPaths = []string{"stdout"}
	config.DisableStacktrace = true

	z, err := config.Build()
	if err != nil {
		z = zap.NewExample()
	}

	return &Logger{level: level, logger: z}
}

// NewWithZap wraps an existing zap logger
func NewWithZap(levelStr string, z *zap.Logger) *Logger {
	return &Logger{level: parseLevel(levelStr), logger: z}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// With returns a logger that adds the fields to every entry
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{level: l.level, logger: l.logger.With(fields...)}
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.logger
}

func (l *Logger) Sync() error {
	return l.logger.Sync()
}

func (l *Logger) log(level Level, v ...interface{}) {
	if level < l.level {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintln(v...), "\n")
	if ce := l.logger.Check(level.zapLevel(), msg); ce != nil {
		ce.Write()
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugLevel, v...)
}

func (l *Logger) Info(v ...interface{}) {
	l.log(InfoLevel, v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(WarnLevel, v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorLevel, v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(ErrorLevel, v...)
	_ = l.logger.Sync()
	os.Exit(1)
}
