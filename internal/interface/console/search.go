package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

const (
	searchMenu = "\nWhat field would you like to use for your search: " +
		"\n\tI\t-\tBook ID" +
		"\n\tT\t-\tBook Title" +
		"\n\tA\t-\tBook Author\n"

	exportPrompt = "Would you like to export your search results to a file? (Y/N): "
)

// search 查询菜单:选择字段、输入查询值,返回查询结果
// 查询失败时提示后重新选择
func (c *Console) search(ctx context.Context) ([]*appbook.BookResponse, error) {
	for {
		option, err := c.choose(ctx, searchMenu,
			"Invalid selection. Please enter one of the options on the menu.",
			"I", "T", "A")
		if err != nil {
			return nil, err
		}

		req, err := c.searchRequest(ctx, option)
		if err != nil {
			return nil, err
		}

		books, err := c.uc.Search.Execute(ctx, req)
		if err != nil {
			c.report("search", err)
			c.println("Operation failed, please try again.")
			continue
		}
		return books, nil
	}
}

// searchRequest 根据选项读取查询值
func (c *Console) searchRequest(ctx context.Context, option string) (appbook.SearchBooksRequest, error) {
	var (
		req   appbook.SearchBooksRequest
		value string
		err   error
	)

	switch option {
	case "I":
		req.Field = book.SearchByID
		value, err = c.enterIDText(ctx)
	case "T":
		req.Field = book.SearchByTitle
		value, err = c.enterText(ctx, titleField)
	default:
		req.Field = book.SearchByAuthor
		value, err = c.enterText(ctx, authorField)
	}

	req.Value = value
	return req, err
}

// enterIDText 按编号查询时保留用户输入的原始数字
func (c *Console) enterIDText(ctx context.Context) (string, error) {
	for {
		value, err := c.prompt(ctx, "Please enter ID (####): ")
		if err != nil {
			return "", err
		}
		if err := book.ValidateID(value); err != nil {
			c.hint(err)
			continue
		}
		return value, nil
	}
}

// searchBooks 主菜单3:查询、输出表格、可选导出
func (c *Console) searchBooks(ctx context.Context) error {
	books, err := c.search(ctx)
	if err != nil {
		return err
	}
	c.printTable(books)
	return c.exportResults(ctx, books)
}

// exportResults 询问是否导出查询结果
func (c *Console) exportResults(ctx context.Context, books []*appbook.BookResponse) error {
	option, err := c.choose(ctx, exportPrompt, invalidOption, "Y", "N")
	if err != nil {
		return err
	}

	if option == "N" {
		c.println("Search results will not be exported.")
		return nil
	}

	resp, err := c.uc.Export.Execute(books)
	if err != nil {
		c.report("export", err)
		return nil
	}
	c.printf("Exported file '%s' can be found in: %s\n", resp.File, resp.Dir)
	return nil
}
