package utils

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.RWMutex
	global = zap.NewNop()
)

// NewLogger builds a JSON logger for prod and a console logger elsewhere.
// level, when set, overrides the environment default.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "", "local", "dev", "docker", "test":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// SetLogger replaces the process-wide logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logMu.Lock()
	global = l
	logMu.Unlock()
}

// L returns the process-wide logger (a no-op logger until SetLogger).
func L() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return global
}

// LogEvent writes one module/action line tagged with the request id.
// Keep message a summary; never pass raw payloads.
func LogEvent(requestID, module, action, message string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("module", strings.ToLower(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	L().Info(message, append(base, fields...)...)
}
