package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// UpdateBookUseCase 图书修改用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 修改请求DTO
// 空字符串、nil表示该字段不修改
type UpdateBookRequest struct {
	ID     uint
	Title  string
	Author string
	Qty    *int64
}

// Execute 执行修改,返回修改后的记录
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ID, req.Title, req.Author, req.Qty)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}
