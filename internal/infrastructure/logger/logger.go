// Package logger 根据配置创建slog日志
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// New 根据日志配置创建*slog.Logger
// 日志默认写到stderr，不与stdout上的菜单交互混在一起
// 返回的cleanup用于关闭日志文件
func New(cfg *config.Config) (*slog.Logger, func(), error) {
	w, cleanup, err := openOutput(cfg.Log.Output)
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("app", "bookstore"), cleanup, nil
}

// openOutput stdout | stderr | 文件路径（追加写入）
func openOutput(output string) (io.Writer, func(), error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, func() {}, nil
	case "stdout":
		return os.Stdout, func() {}, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// parseLevel 字符串日志级别 → slog.Level
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
