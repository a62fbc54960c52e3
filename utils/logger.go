package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger 全局日志对象
var Logger zerolog.Logger

// InitLogger 初始化日志系统
func InitLogger(debug bool) {
	InitLoggerWithWriter(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, debug)
	Logger.Info().Msg("日志系统初始化完成")
}

// InitLoggerWithWriter 使用指定输出初始化日志
func InitLoggerWithWriter(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	Logger = zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}

// LogApiRequest 记录API请求
func LogApiRequest(method, url string, params interface{}) {
	Logger.Debug().
		Str("method", method).
		Str("url", url).
		Interface("params", params).
		Msg("API请求")
}

// LogApiResponse 记录API响应
func LogApiResponse(method, url string, statusCode int, responseTime time.Duration) {
	event := Logger.Info()
	if statusCode >= 500 {
		event = Logger.Error()
	} else if statusCode >= 400 {
		event = Logger.Warn()
	}
	event.
		Str("method", method).
		Str("url", url).
		Int("statusCode", statusCode).
		Dur("responseTime", responseTime).
		Msg("API响应")
}

// LogInfo 记录
func LogInfo(context map[string]interface{}, message string) {
	Logger.Info().
		Interface("context", context).
		Msg(message)
}

// LogError 记录错误
func LogError(err error, context map[string]interface{}, message string) {
	Logger.Error().
		Err(err).
		Interface("context", context).
		Msg(message)
}

// LogDbOperation 记录数据库操作
func LogDbOperation(operation string, collection string, query interface{}, result interface{}) {
	Logger.Debug().
		Str("operation", operation).
		Str("collection", collection).
		Interface("query", query).
		Interface("result", result).
		Msg("数据库操作")
}
