package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库错误统一包装为ErrCodeDatabaseError,由控制台提示重试
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = 0 // ID由数据库分配

	// 书名唯一由领域服务保证,表上没有唯一索引
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return dbError(err, "Could not save the book.")
	}

	// 回填自增ID
	b.ID = model.ID
	return nil
}

// CreateBatch 批量插入演示数据,主键已存在时忽略
func (r *bookRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	if len(books) == 0 {
		return nil
	}

	models := make([]*BookModel, len(books))
	for i, b := range books {
		models[i] = toBookModel(b)
	}

	err := r.getDB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
	if err != nil {
		return dbError(err, "Could not populate the database.")
	}
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "Could not load the book.")
	}
	return toBookEntity(&model), nil
}

// FindByTitle 根据书名查找图书(不区分大小写)
func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).
		Where("LOWER(title) = LOWER(?)", title).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "Could not check the title.")
	}
	return toBookEntity(&model), nil
}

// Search 按字段模糊查询
// SELECT * FROM books WHERE <field> LIKE '%pattern%' ORDER BY id
func (r *bookRepository) Search(ctx context.Context, field book.SearchField, pattern string) ([]*book.Book, error) {
	if !field.Valid() {
		return nil, book.ErrInvalidSearchField
	}

	var models []BookModel
	err := r.getDB(ctx).
		Where(string(field)+" LIKE ?", "%"+pattern+"%").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "Search failed.")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 更新书名、作者、数量
// 不根据RowsAffected判断是否存在:MySQL对未变化的行返回0
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := r.getDB(ctx).
		Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":  b.Title,
			"author": b.Author,
			"qty":    b.Qty,
		}).Error
	if err != nil {
		return dbError(err, "Could not update the book.")
	}
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return dbError(result.Error, "Could not delete the book.")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Count 统计图书数量
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&BookModel{}).Count(&count).Error; err != nil {
		return 0, dbError(err, "Could not count books.")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:     model.ID,
		Title:  model.Title,
		Author: model.Author,
		Qty:    model.Qty,
	}
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Qty:    b.Qty,
	}
}

// dbError 包装数据库错误
func dbError(err error, message string) error {
	return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, message)
}

// getDB 优先使用context中的事务DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
