package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// main 书店库存管理程序入口
// 依赖由Wire生成的InitializeConsole组装(见wire.go)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. Ctrl+C、SIGTERM时结束菜单循环
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 依赖注入:数据库 ← 仓储 ← 领域服务 ← 用例 ← 控制台
	app, cleanup, err := InitializeConsole(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 4. 运行菜单,初始化数据库失败时退出码为1
	if err := app.Run(ctx); err != nil {
		cleanup()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cleanup()
}
