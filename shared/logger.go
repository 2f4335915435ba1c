package shared

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerAdapter interface {
	Error(msg string, err error, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	With(fields ...zap.Field) LoggerAdapter
}

type adapter struct {
	logger *zap.Logger
}

var _ LoggerAdapter = (*adapter)(nil)

func (a *adapter) Error(msg string, err error, fields ...zap.Field) {
	a.logger.Error(msg, append(fields, zap.Error(err))...)
}

func (a *adapter) Warn(msg string, fields ...zap.Field) {
	a.logger.Warn(msg, fields...)
}

func (a *adapter) Info(msg string, fields ...zap.Field) {
	a.logger.Info(msg, fields...)
}

func (a *adapter) Debug(msg string, fields ...zap.Field) {
	a.logger.Debug(msg, fields...)
}

func (a *adapter) With(fields ...zap.Field) LoggerAdapter {
	return &adapter{logger: a.logger.With(fields...)}
}

// NewStdLogger logs to stderr in zap's production configuration.
func NewStdLogger() LoggerAdapter {
	logger, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return &adapter{logger: logger}
}

// NewFileLogger logs JSON lines to a rotating file.
func NewFileLogger(filename string, maxSizeMB int, maxBackups int, maxAgeDays int, compress bool) LoggerAdapter {
	hook := lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compress,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&hook),
		zapcore.DebugLevel,
	)

	return &adapter{logger: zap.New(core, zap.AddCallerSkip(1))}
}

// NewNopLogger discards everything. Meant for tests.
func NewNopLogger() LoggerAdapter {
	return &adapter{logger: zap.NewNop()}
}
