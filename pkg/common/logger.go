package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.Logger
	once   sync.Once
)

func getLogger() *zap.Logger {
	if logger == nil {
		initLogger()
	}
	return logger
}

func GetLogger() *zap.Logger {
	logger = getLogger()
	return logger.Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	logger = getLogger()
	return logger.Named(name).With(fields...)
}

func initLogger() {
	once.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			log.Fatalf("Error getting current directory: %v", err)
		}

		logsDir := filepath.Join(dir, "logs")
		if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
			log.Fatalf("Error find/create logs directory: %v", err)
		}

		// TODO: make rotation settings configurable via env
		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, "app.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28,   // days
			Compress:   true, // gzip
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(logFile),
			zap.InfoLevel,
		)

		if IsProduction() {
			logger = zap.New(fileCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		} else {
			consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
			consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)

			combinedCore := zapcore.NewTee(fileCore, consoleCore)
			logger = zap.New(combinedCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		}
	})
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	_ = GetLogger()

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(buf),
		level,
	)
	logger = zap.New(core)
}

func SetTestLoggerNop() {
	_ = GetLogger()

	logger = zap.NewNop()
}
