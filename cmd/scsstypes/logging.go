package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max-size"
	logMaxBackupsKey = "log.max-backups"
	logMaxAgeKey     = "log.max-age"
	logCompressKey   = "log.compress"
)

// defaultLogFilename keeps diagnostics out of the project tree
var defaultLogFilename = filepath.Join(os.TempDir(), "scsstypes", "scsstypes.log")

// parseSlogLevel converts a level name (or numeric slog level) to slog.Level.
func parseSlogLevel(level string, defaultLevel slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return defaultLevel
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger builds the diagnostic logger.
//
// It logs at Info by default and at Debug when verbose is set. A log.filename
// of "off" discards everything.
func configureLogger(verbose bool) *slog.Logger {
	logPath := strings.TrimSpace(k.String(logFilenameKey))
	if logPath == "" {
		logPath = defaultLogFilename
	}
	if strings.EqualFold(logPath, "off") {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logLevel := parseSlogLevel(k.String(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	maxSize := k.Int(logMaxSizeKey)
	if maxSize <= 0 {
		maxSize = 10
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: k.Int(logMaxBackupsKey),
		MaxAge:     k.Int(logMaxAgeKey),
		Compress:   k.Bool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
