// Package logger 提供基于 zap 的结构化日志.
package logger

import "context"

// 日志级别.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// 输出格式.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// 输出目标，其他取值视为文件路径.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Field 日志字段.
type Field struct {
	Key   string
	Value any
}

// Logger 日志记录器接口.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)

	// With 返回附带字段的 logger.
	With(fields ...Field) Logger

	// WithContext 返回附带 context 中链路信息的 logger.
	WithContext(ctx context.Context) Logger

	Sync() error
}

// New 按配置创建 logger.
func New(cfg *Config) (Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return newZapLogger(cfg)
}

// MustNew 创建 logger，失败时 panic.
func MustNew(cfg *Config) Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}
