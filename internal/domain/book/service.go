package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 封装书名唯一、数据校验、演示数据初始化等业务规则
type Service interface {
	// EnsureCatalog 初始化图书目录
	// 业务规则:表为空时写入演示数据,已有数据时不做任何修改
	EnsureCatalog(ctx context.Context) error

	// AddBook 新增图书
	// 业务规则:
	// - 书名、作者1-256个字符,统一为首字母大写
	// - 数量0-9999999999
	// - 书名不能重复
	AddBook(ctx context.Context, title, author string, qty int64) (*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// Search 按字段模糊查询
	Search(ctx context.Context, field SearchField, pattern string) ([]*Book, error)

	// TitleTaken 检查书名是否已被其他图书使用
	// excludeID为0时检查全表
	TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error)

	// UpdateBook 更新图书,title/author为空、qty为nil表示不修改
	// 业务规则:修改书名时需重新检查唯一性
	UpdateBook(ctx context.Context, id uint, title, author string, qty *int64) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
	tx   Transactor
}

// NewService 创建图书领域服务
func NewService(repo Repository, tx Transactor) Service {
	return &service{repo: repo, tx: tx}
}

// EnsureCatalog 初始化图书目录
func (s *service) EnsureCatalog(ctx context.Context) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return s.repo.CreateBatch(ctx, DemoBooks())
	})
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, title, author string, qty int64) (*Book, error) {
	// 1. 规范化后校验长度(首字母大写可能改变字符数,如ß → Ss)
	title, author = NormalizeName(title), NormalizeName(author)
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateAuthor(author); err != nil {
		return nil, err
	}

	// 2. 检查书名是否重复
	taken, err := s.TitleTaken(ctx, title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleDuplicate
	}

	// 3. 创建实体
	book := NewBook(title, author, 0)
	if err := book.UpdateQty(qty); err != nil {
		return nil, err
	}

	// 4. 持久化,返回数据库中的记录
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, book.ID)
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Search 按字段模糊查询
func (s *service) Search(ctx context.Context, field SearchField, pattern string) ([]*Book, error) {
	if !field.Valid() {
		return nil, ErrInvalidSearchField
	}
	return s.repo.Search(ctx, field, pattern)
}

// TitleTaken 检查书名是否已被其他图书使用
func (s *service) TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error) {
	existing, err := s.repo.FindByTitle(ctx, NormalizeName(title))
	if errors.Is(err, ErrBookNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != excludeID, nil
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, title, author string, qty *int64) (*Book, error) {
	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 校验并规范化新值
	if title != "" {
		title = NormalizeName(title)
		if err := ValidateTitle(title); err != nil {
			return nil, err
		}
		if title != book.Title {
			taken, err := s.TitleTaken(ctx, title, book.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrTitleDuplicate
			}
		}
	}
	if author != "" {
		author = NormalizeName(author)
		if err := ValidateAuthor(author); err != nil {
			return nil, err
		}
	}

	// 3. 更新实体
	book.UpdateInfo(title, author)
	if qty != nil {
		if err := book.UpdateQty(*qty); err != nil {
			return nil, err
		}
	}

	// 4. 持久化,返回更新后的记录
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
