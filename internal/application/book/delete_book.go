package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 根据ID删除图书
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}
