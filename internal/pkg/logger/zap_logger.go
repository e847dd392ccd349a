package logger

import (
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ILogger interface {
	Debug(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
	Sync() error
}

type ZapLogger struct {
	logger *zap.Logger
}

func rotatingFile(path string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})
}

func fileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func newZapLogger(core zapcore.Core) *ZapLogger {
	// Skip the wrapper frame so caller points at the service code.
	return &ZapLogger{logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))}
}

// NewZapLogger writes JSON lines to a rotated file and mirrors to stdout,
// human-readable outside production.
func NewZapLogger(logFilePath string, isProd bool) *ZapLogger {
	console := fileEncoder()
	if !isProd {
		console = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return newZapLogger(zapcore.NewTee(
		zapcore.NewCore(fileEncoder(), rotatingFile(logFilePath), zap.InfoLevel),
		zapcore.NewCore(console, zapcore.Lock(os.Stdout), zap.DebugLevel),
	))
}

// NewIsolatedLogger writes only to its own file. The assistant's LLM
// phrasing goes here so prompts do not flood the main log.
func NewIsolatedLogger(logFilePath string) *ZapLogger {
	return newZapLogger(zapcore.NewCore(fileEncoder(), rotatingFile(logFilePath), zap.InfoLevel))
}

func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func (l *ZapLogger) Debug(module, message string, details map[string]interface{}) {
	l.write(zapcore.DebugLevel, module, message, details)
}

func (l *ZapLogger) Info(module, message string, details map[string]interface{}) {
	l.write(zapcore.InfoLevel, module, message, details)
}

func (l *ZapLogger) Warn(module, message string, details map[string]interface{}) {
	l.write(zapcore.WarnLevel, module, message, details)
}

func (l *ZapLogger) Error(module, message string, details map[string]interface{}) {
	l.write(zapcore.ErrorLevel, module, message, details)
}

// write flattens details into top-level fields in key order, so entries
// like session_id can be filtered on directly.
func (l *ZapLogger) write(level zapcore.Level, module, message string, details map[string]interface{}) {
	ce := l.logger.Check(level, message)
	if ce == nil {
		return
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("module", module))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, details[k]))
	}
	ce.Write(fields...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
