package book

import (
	"os"
	"path/filepath"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// ExportPath 查询结果导出文件路径
type ExportPath string

// ExportResultsUseCase 查询结果导出用例
// 文件内容:结果数量标题 + 表格,每次导出覆盖原文件
type ExportResultsUseCase struct {
	path ExportPath
}

// NewExportResultsUseCase 创建导出用例
func NewExportResultsUseCase(path ExportPath) *ExportResultsUseCase {
	return &ExportResultsUseCase{path: path}
}

// ExportResponse 导出结果
type ExportResponse struct {
	File string // 文件名
	Dir  string // 文件所在目录(绝对路径)
}

// Execute 写入导出文件
func (uc *ExportResultsUseCase) Execute(books []*BookResponse) (*ExportResponse, error) {
	path := string(uc.path)
	content := ResultsHeader(len(books)) + BookTable(books)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeFileError, "Could not export the search results to '%s'.", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeFileError, "Could not export the search results to '%s'.", path)
	}

	return &ExportResponse{
		File: filepath.Base(path),
		Dir:  filepath.Dir(abs),
	}, nil
}
