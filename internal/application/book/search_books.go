package book

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// SearchBooksUseCase 图书查询用例
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建查询用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// SearchBooksRequest 查询请求DTO
type SearchBooksRequest struct {
	Field book.SearchField // 查询字段:id/title/author
	Value string           // 查询值(两侧自动加通配符)
}

// Execute 执行查询,无结果时返回空列表
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) ([]*BookResponse, error) {
	books, err := uc.bookService.Search(ctx, req.Field, req.Value)
	if err != nil {
		return nil, err
	}

	list := make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = toBookResponse(b)
	}
	return list, nil
}
