package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "KBFORMS_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// An empty level disables logging (silent mode).
func Initialize(level string) error {
	// Silent by default so dialogs render cleanly
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the KBFORMS_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize(os.Getenv(LogLevelEnvVar))
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer cores.
func SetLogger(l *zap.Logger) {
	logger = l
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFieldUpdate logs a single form field mutation and its resulting error message.
func LogFieldUpdate(form string, field string, errMsg string, hasErrors bool) {
	Debug("Form field updated",
		zap.String("form", form),
		zap.String("field", field),
		zap.String("error", errMsg),
		zap.Bool("has_errors", hasErrors),
	)
}

// LogClipboard logs a clipboard event. Failures are logged at warn level.
func LogClipboard(event string, size int, err error) {
	if err != nil {
		Warn("Something went wrong when trying to copy content to clipboard",
			zap.String("event", event),
			zap.Int("length", size),
			zap.Error(err),
		)
		return
	}
	Debug("Clipboard event",
		zap.String("event", event),
		zap.Int("length", size),
	)
}

// LogRename logs a knowledge base rename.
func LogRename(project string, from string, to string) {
	Info("Knowledge base renamed",
		zap.String("project", project),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
