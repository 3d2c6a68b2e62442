package book

import (
	"context"
)

// SearchField 模糊查询字段
type SearchField string

const (
	SearchByID     SearchField = "id"
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
)

// Valid 字段名会拼接进SQL,只允许白名单内的列
func (f SearchField) Valid() bool {
	switch f {
	case SearchByID, SearchByTitle, SearchByAuthor:
		return true
	}
	return false
}

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建图书,成功后回填自增ID
	Create(ctx context.Context, book *Book) error

	// CreateBatch 批量插入(保留传入的ID),已存在的记录忽略
	CreateBatch(ctx context.Context, books []*Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 根据书名精确查找图书
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Search 按字段模糊查询(两侧通配),按ID升序
	Search(ctx context.Context, field SearchField, pattern string) ([]*Book, error)

	// Update 更新书名、作者、数量
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// Count 统计图书数量
	Count(ctx context.Context) (int64, error)
}

// Transactor 事务接口
// fn内通过ctx获取到的仓储操作都在同一事务中执行
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
