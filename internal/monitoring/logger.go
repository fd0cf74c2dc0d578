// Package monitoring holds the process-wide logger and the Prometheus
// metrics exported by the orchestrator.
package monitoring

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu sync.RWMutex
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// Logf is the package-level diagnostic logger. It writes through the zap
// sugared logger by default but may be replaced by SetLogger. Tests or
// production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	S().Infof(format, v...)
}

// SetLogger replaces the printf-style logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// InitProduction installs a JSON logger with ISO8601 timestamps.
func InitProduction() error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Use(l)
	return nil
}

// InitDevelopment installs a console logger at debug level.
func InitDevelopment() error {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Use(l)
	return nil
}

// Use replaces the zap globals with l. Tests pass zap.NewNop() or an
// observer core here.
func Use(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	zap.ReplaceGlobals(l)
	if base != nil {
		_ = base.Sync()
	}
	base = l
	sugar = l.Sugar()
}

// L returns the structured logger, never nil.
func L() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	if base != nil {
		return base
	}
	return zap.L()
}

// S returns the sugared logger, never nil.
func S() *zap.SugaredLogger {
	logMu.RLock()
	defer logMu.RUnlock()
	if sugar != nil {
		return sugar
	}
	return zap.S()
}

// Sync flushes buffered log entries.
func Sync() {
	logMu.RLock()
	defer logMu.RUnlock()
	if base != nil {
		_ = base.Sync()
	}
}
