package testutil

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志初始化相关的环境变量与默认值
const (
	// envLogLevel 日志级别环境变量，默认 debug（测试场景要看全量输出）
	envLogLevel = "KATYDID_LOG_LEVEL"
	// envLogFile 可选的日志文件路径环境变量，设置后额外写入轮转文件
	envLogFile = "KATYDID_LOG_FILE"

	defaultLogLevel = "debug"
)

var (
	loggingOnce sync.Once
	logger      *zap.Logger
)

// EnableLogging 启用测试日志输出，返回进程级共享的 logger
//
// 设计说明：
// - 进程级副作用，sync.Once 保证幂等，重复调用安全且返回同一实例
// - 控制台输出级别带颜色（CapitalColorLevelEncoder），方便测试时肉眼分级
// - 级别通过 KATYDID_LOG_LEVEL 覆盖，未设置时默认 debug
// - 设置 KATYDID_LOG_FILE 时额外写入 lumberjack 轮转文件（不带颜色码）
//
// 仅用于测试和调试，业务代码的 logger 由各服务自行装配
func EnableLogging() *zap.Logger {
	loggingOnce.Do(func() {
		logger = buildLogger()
	})
	return logger
}

// buildLogger 装配控制台（和可选文件）输出的 logger
func buildLogger() *zap.Logger {
	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	_ = v.BindEnv("log_level", envLogLevel)
	_ = v.BindEnv("log_file", envLogFile)

	level := parseLogLevel(v.GetString("log_level"))

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), level),
	}

	if file := v.GetString("log_file"); file != "" {
		// 文件输出不带颜色码，否则轮转文件里全是转义序列
		fileCfg := zap.NewDevelopmentEncoderConfig()
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    16, // MB
			MaxBackups: 3,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), sink, level))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// parseLogLevel 解析日志级别字符串，无法识别时回退到 debug
func parseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
