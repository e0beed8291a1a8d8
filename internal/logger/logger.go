package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/restget/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// S is the package-level logger used across packages.
// It discards everything until Init is called.
var S = zap.NewNop().Sugar()

// logFile is the open log destination, closed by Close
var logFile *os.File

// Init initializes a zap SugaredLogger using settings from config.
// The terminal belongs to the TUI, so output always goes to cfg.LogFile;
// an empty LogFile disables logging.
func Init(cfg *config.Config) (*zap.SugaredLogger, error) {
	if cfg.LogFile == "" {
		S = zap.NewNop().Sugar()
		return S, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), config.DirPermissions); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.FilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	S = New(zapcore.AddSync(f), ParseLevel(cfg.LogLevel))
	logFile = f
	return S, nil
}

// New builds a JSON logger writing to w at the given level
func New(w zapcore.WriteSyncer, level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(w),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()
}

// ParseLevel maps a config level name to a zap level, defaulting to info
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes the logger and closes the log file.
func Close() error {
	_ = S.Sync()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
