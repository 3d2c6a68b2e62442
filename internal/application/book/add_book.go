package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// AddBookUseCase 新书录入用例
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建录入用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{bookService: bookService}
}

// AddBookRequest 录入请求DTO
type AddBookRequest struct {
	Title  string // 书名(保存前统一为首字母大写)
	Author string // 作者
	Qty    int64  // 库存数量
}

// Execute 执行录入用例
// 领域服务负责:长度校验、书名重复检查、首字母大写
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, req.Qty)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}
