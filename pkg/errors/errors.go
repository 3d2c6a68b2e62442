package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于调用方判断错误类型
// 2. Message是展示给用户的提示信息
// 3. Err是内部错误，只写日志，不直接展示给用户
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、文件读写错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return WrapCode(err, ErrCodeInternal, message)
}

// WrapCode 使用指定错误码包装底层错误
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrapf 使用指定错误码包装底层错误,Message支持格式化
func Wrapf(err error, code int, format string, args ...interface{}) *AppError {
	return WrapCode(err, code, fmt.Sprintf(format, args...))
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 用户输入错误、业务规则校验失败
// - 5xxxx: 系统错误（数据库异常、文件写入失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeFileError     = 50003 // 文件读写错误
	ErrCodeConfigError   = 50004 // 配置错误

	// 资源错误（40400-40499）
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 业务规则错误（40000-40099）
	ErrCodeTitleDuplicate = 40004 // 书名已存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal error.")
}

// HasCode 判断错误链中是否包含指定错误码的AppError
func HasCode(err error, code int) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
