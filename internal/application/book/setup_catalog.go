package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// SetupCatalogUseCase 启动时初始化图书目录
// 失败时由调用方终止程序
type SetupCatalogUseCase struct {
	bookService book.Service
}

// NewSetupCatalogUseCase 创建初始化用例
func NewSetupCatalogUseCase(bookService book.Service) *SetupCatalogUseCase {
	return &SetupCatalogUseCase{bookService: bookService}
}

// Execute 表为空时写入演示数据
func (uc *SetupCatalogUseCase) Execute(ctx context.Context) error {
	return uc.bookService.EnsureCatalog(ctx)
}
