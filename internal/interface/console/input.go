package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// textField 书名或作者输入
type textField struct {
	name     string
	validate func(string) error
}

var (
	titleField  = textField{name: "title", validate: book.ValidateTitle}
	authorField = textField{name: "author", validate: book.ValidateAuthor}
)

// enterText 读取书名或作者,直到长度合法
func (c *Console) enterText(ctx context.Context, f textField) (string, error) {
	for {
		value, err := c.prompt(ctx, "Please enter the book "+f.name+": ")
		if err != nil {
			return "", err
		}
		// 保存前会统一为首字母大写,按规范化后的长度校验
		if err := f.validate(book.NormalizeName(value)); err != nil {
			c.hint(err)
			continue
		}
		return value, nil
	}
}

// enterID 读取4位数字编号
func (c *Console) enterID(ctx context.Context) (uint, error) {
	for {
		value, err := c.prompt(ctx, "Please enter ID (####): ")
		if err != nil {
			return 0, err
		}
		id, err := book.ParseID(value)
		if err != nil {
			c.hint(err)
			continue
		}
		return id, nil
	}
}

// enterQty 读取数量(1-10位数字)
func (c *Console) enterQty(ctx context.Context) (int64, error) {
	for {
		value, err := c.prompt(ctx, "Please enter Qty.: ")
		if err != nil {
			return 0, err
		}
		qty, err := book.ParseQty(value)
		if err != nil {
			c.hint(err)
			continue
		}
		return qty, nil
	}
}

// choose 循环读取,直到输入为options之一(不区分大小写)
// 其他输入时输出invalid,invalid为空则静默重试
func (c *Console) choose(ctx context.Context, text, invalid string, options ...string) (string, error) {
	for {
		option, err := c.promptUpper(ctx, text)
		if err != nil {
			return "", err
		}
		for _, o := range options {
			if option == o {
				return option, nil
			}
		}
		if invalid != "" {
			c.println(invalid)
		}
	}
}

// chooseFromResults 读取编号,直到该编号在查询结果中
func (c *Console) chooseFromResults(ctx context.Context, books []*appbook.BookResponse) (*appbook.BookResponse, error) {
	for {
		id, err := c.enterID(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range books {
			if b.ID == id {
				return b, nil
			}
		}
		c.println("ID not in result list. Please try again.")
	}
}
