package book

import (
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// 图书领域错误定义
// Message会直接显示在控制台,必须保持与菜单提示一致
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found.")

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeTitleDuplicate, "A book with this name already exists in the database.")

	// ErrTitleTooLong 书名过长
	ErrTitleTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "Title is too long. Please enter up to 256 characters.")

	// ErrTitleTooShort 书名为空
	ErrTitleTooShort = apperrors.New(apperrors.ErrCodeInvalidParams, "Title is too short. Please enter at least one character.")

	// ErrAuthorTooLong 作者过长
	ErrAuthorTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "Author is too long. Please enter up to 256 characters.")

	// ErrAuthorTooShort 作者为空
	ErrAuthorTooShort = apperrors.New(apperrors.ErrCodeInvalidParams, "Author is too short. Please enter at least one character.")

	// ErrInvalidID 编号格式不正确
	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "Please enter a 4 digit number as ID.")

	// ErrInvalidQty 数量格式不正确
	ErrInvalidQty = apperrors.New(apperrors.ErrCodeInvalidParams, "Please enter a number up to 9999999999.")

	// ErrInvalidSearchField 不支持的查询字段
	ErrInvalidSearchField = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid search field.")
)
