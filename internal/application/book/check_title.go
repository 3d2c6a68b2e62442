package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// CheckTitleUseCase 书名唯一性检查用例
// 录入、修改书名前调用,重复时由控制台提示重新输入或退出
type CheckTitleUseCase struct {
	bookService book.Service
}

// NewCheckTitleUseCase 创建书名检查用例
func NewCheckTitleUseCase(bookService book.Service) *CheckTitleUseCase {
	return &CheckTitleUseCase{bookService: bookService}
}

// Execute 返回书名是否已被其他图书使用
// excludeID为正在修改的图书ID,新增时传0
func (uc *CheckTitleUseCase) Execute(ctx context.Context, title string, excludeID uint) (bool, error) {
	return uc.bookService.TitleTaken(ctx, title, excludeID)
}
