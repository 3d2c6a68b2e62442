package book

import (
	"fmt"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/pkg/table"
)

// BookResponse 图书响应DTO
type BookResponse struct {
	ID     uint
	Title  string
	Author string
	Qty    int64
}

// toBookResponse 领域实体 → DTO
func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Qty:    b.Qty,
	}
}

// bookHeaders 表格列名
var bookHeaders = []string{"ID", "Title", "Author", "Qty."}

// ResultsHeader 查询结果数量标题
func ResultsHeader(n int) string {
	return fmt.Sprintf("\nSearch results:\t%d\n", n)
}

// BookTable 将图书列表渲染为ASCII表格
func BookTable(books []*BookResponse) string {
	rows := make([][]interface{}, len(books))
	for i, b := range books {
		rows[i] = []interface{}{b.ID, b.Title, b.Author, b.Qty}
	}
	return table.Render(bookHeaders, rows)
}
