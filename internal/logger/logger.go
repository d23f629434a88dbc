// Package logger quản lý các logger đặt tên (app, audit, error) trên nền logrus,
// ghi file có rotation (lumberjack) và ghi bất đồng bộ qua AsyncHook.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// cfg nil sẽ dùng DefaultConfig.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := os.MkdirAll(getLogPath(), 0o755); err != nil {
		return fmt.Errorf("không thể tạo thư mục logs: %w", err)
	}
	return nil
}

// getLogPath trả về đường dẫn thư mục logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.LogPath
	}
	return filepath.Join(wd, config.LogPath)
}

// GetLogger trả về logger theo tên (app, audit, error), tạo mới nếu chưa có
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("không thể khởi tạo logger: %v", err))
		}
	}

	if lg, ok := loggers[name]; ok {
		return lg
	}

	lg := createLogger(name)
	loggers[name] = lg
	return lg
}

// createLogger tạo một logger mới với cấu hình
func createLogger(name string) *logrus.Logger {
	lg := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	lg.SetLevel(level)

	if config.Format == "json" {
		lg.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		lg.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Tách file writer và stdout writer, ghi qua AsyncHook để file I/O chậm
	// không block request handling
	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		lg.AddHook(NewAsyncHookWithWriters(writers, 1000))
		// Hook xử lý toàn bộ output, discard để tránh ghi trùng
		lg.SetOutput(io.Discard)
	}

	lg.SetReportCaller(true)

	return lg
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(name string) string {
	var filename string
	switch name {
	case "app":
		filename = config.AppFile
	case "audit":
		filename = config.AuditFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}
	return filepath.Join(getLogPath(), filename)
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger cho audit
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho errors
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}

// Close đóng tất cả async hooks, flush các entry còn trong buffer
func Close() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, lg := range loggers {
		for _, hooks := range lg.Hooks {
			for _, h := range hooks {
				if ah, ok := h.(*AsyncHook); ok {
					_ = ah.Close()
				}
			}
		}
	}
}
