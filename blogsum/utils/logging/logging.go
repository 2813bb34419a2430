package logging

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	AppLogger     *zap.Logger
	RequestLogger *zap.Logger
	TimerLogger   *zap.Logger
	ErrorLogger   *zap.Logger
)

type contextKey string

// RequestIDKey carries the per-request correlation id through the context.
const RequestIDKey contextKey = "request_id"

func InitLogger() {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		panic("failed to create logs directory: " + err.Error())
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	newFileLogger := func(filename string, maxSize, maxAge int, level zapcore.Level) *zap.Logger {
		core := zapcore.NewCore(encoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: filename, MaxSize: maxSize, MaxAge: maxAge, Compress: true,
			}),
			level,
		)
		return zap.New(core)
	}

	AppLogger = newFileLogger("./logs/app.log", 100, 28, zap.InfoLevel)
	RequestLogger = newFileLogger("./logs/request.log", 50, 7, zap.InfoLevel)
	TimerLogger = newFileLogger("./logs/timer.log", 50, 7, zap.InfoLevel)
	ErrorLogger = newFileLogger("./logs/error.log", 100, 30, zap.ErrorLevel)
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "FuncName")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()
	requestID, _ := ctx.Value(RequestIDKey).(string)

	return func() {
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		// timings go only to timer.log
		TimerLogger.Info("function timed", fields...)
	}
}
