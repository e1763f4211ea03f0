package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "floatnav.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logger       *zap.Logger
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			logPath = defaultLogFile
		} else {
			logPath = path
		}
	}
	logger = nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error writes errors to the shared log file regardless of the trace
// setting.
func Error(err error) {
	if err == nil {
		return
	}
	if l := sharedLogger(); l != nil {
		l.Error(err.Error())
	}
}

// Warn records a developer warning regardless of the trace setting.
func Warn(msg string, fields ...zap.Field) {
	if l := sharedLogger(); l != nil {
		l.Warn(msg, fields...)
	}
}

// Trace appends a structured JSON entry to the shared log when tracing is
// enabled.
func Trace(event string, fields ...zap.Field) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	if l := sharedLogger(); l != nil {
		l.Info(event, fields...)
	}
}

func sharedLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)
	logger = zap.New(core)
	return logger
}
