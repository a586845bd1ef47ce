package logger

import (
	"context"
	"errors"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger zap 日志实现.
type zapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// newZapLogger 创建 zap logger.
func newZapLogger(c *Config) (Logger, error) {
	sink, _, err := zap.Open(c.Output)
	if err != nil {
		return nil, &ConfigError{Field: "output", Message: err.Error()}
	}
	core := zapcore.NewCore(buildEncoder(c), sink, parseLevel(c.Level))

	var options []zap.Option
	if c.EnableCaller {
		options = append(options, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	l := zap.New(core, options...).With(zap.String("service", c.ServiceName))
	return FromZap(l), nil
}

// FromZap 包装已有的 zap.Logger.
func FromZap(l *zap.Logger) Logger {
	return &zapLogger{logger: l, sugar: l.Sugar()}
}

// NewNop 返回丢弃所有输出的 logger.
func NewNop() Logger {
	return FromZap(zap.NewNop())
}

func (z *zapLogger) Debug(args ...any)                 { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z *zapLogger) Info(args ...any)                  { z.sugar.Info(args...) }
func (z *zapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z *zapLogger) Warn(args ...any)                  { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z *zapLogger) Error(args ...any)                 { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }

// With 返回带有附加字段的 logger.
func (z *zapLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return z
	}
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = toZapField(f)
	}
	return FromZap(z.logger.With(zapFields...))
}

// WithContext 附加 context 中 span 的 traceId 与 spanId，没有有效 span 时返回自身.
func (z *zapLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return z
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return z
	}
	return z.With(
		String("traceId", sc.TraceID().String()),
		String("spanId", sc.SpanID().String()),
	)
}

// Sync 同步缓冲区，忽略标准输出不支持 fsync 的错误.
func (z *zapLogger) Sync() error {
	err := z.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

func toZapField(f Field) zap.Field {
	switch v := f.Value.(type) {
	case string:
		return zap.String(f.Key, v)
	case int:
		return zap.Int(f.Key, v)
	case int64:
		return zap.Int64(f.Key, v)
	case uint64:
		return zap.Uint64(f.Key, v)
	case float64:
		return zap.Float64(f.Key, v)
	case bool:
		return zap.Bool(f.Key, v)
	case time.Duration:
		return zap.Duration(f.Key, v)
	case error:
		return zap.NamedError(f.Key, v)
	default:
		return zap.Any(f.Key, v)
	}
}

// String 创建字符串字段.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int 创建整数字段.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 创建 int64 字段.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool 创建布尔字段.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration 创建持续时间字段.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err 创建错误字段.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Any 创建任意类型字段.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }
