//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
// 修改后运行 `wire gen ./cmd/bookstore` 重新生成wire_gen.go

package main

import (
	"io"

	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/logger"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookstore-inventory/internal/interface/console"
)

// infrastructureSet 基础设施层依赖
// 包含:数据库连接、日志
var infrastructureSet = wire.NewSet(
	database.NewDB, // 创建数据库连接(sqlite/mysql)
	logger.New,     // 创建slog日志
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	database.NewBookRepository, // 图书仓储
	database.NewTxManager,      // 事务管理器
	wire.Bind(new(book.Transactor), new(*database.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewSetupCatalogUseCase,  // 初始化目录
	appbook.NewAddBookUseCase,       // 录入
	appbook.NewCheckTitleUseCase,    // 书名检查
	appbook.NewSearchBooksUseCase,   // 查询
	appbook.NewUpdateBookUseCase,    // 修改
	appbook.NewDeleteBookUseCase,    // 删除
	appbook.NewExportResultsUseCase, // 导出
	provideExportPath,
)

// consoleSet 接口层依赖
var consoleSet = wire.NewSet(
	wire.Struct(new(console.UseCases), "*"),
	console.New,
)

// provideExportPath 从配置提取导出文件路径
func provideExportPath(cfg *config.Config) appbook.ExportPath {
	return appbook.ExportPath(cfg.Export.File)
}

// InitializeConsole 组装控制台
// cleanup依次关闭数据库连接和日志文件
func InitializeConsole(cfg *config.Config, in io.Reader, out io.Writer) (*console.Console, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		consoleSet,
	)
	return nil, nil, nil
}
