package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

const duplicatePrompt = "\nA book with this name already exists in the database." +
	"\nEnter 'T' to try again or 'E' to exit: "

// enterUniqueTitle 读取一个未被其他图书使用的书名
// excludeID为正在修改的图书编号,新增时为0
// 用户选择退出时ok为false
func (c *Console) enterUniqueTitle(ctx context.Context, excludeID uint) (title string, ok bool, err error) {
	for {
		title, err = c.enterText(ctx, titleField)
		if err != nil {
			return "", false, err
		}
		title = book.NormalizeName(title)

		taken, err := c.uc.CheckTitle.Execute(ctx, title, excludeID)
		if err != nil {
			c.report("check_title", err)
			continue
		}
		if !taken {
			return title, true, nil
		}

		option, err := c.choose(ctx, duplicatePrompt, "", "T", "E")
		if err != nil {
			return "", false, err
		}
		if option == "E" {
			return "", false, nil
		}
	}
}

// enterBook 主菜单1:录入新书
func (c *Console) enterBook(ctx context.Context) error {
	title, ok, err := c.enterUniqueTitle(ctx, 0)
	if err != nil || !ok {
		return err
	}

	author, err := c.enterText(ctx, authorField)
	if err != nil {
		return err
	}
	qty, err := c.enterQty(ctx)
	if err != nil {
		return err
	}

	resp, err := c.uc.AddBook.Execute(ctx, appbook.AddBookRequest{
		Title:  title,
		Author: author,
		Qty:    qty,
	})
	if err != nil {
		c.report("add_book", err)
		return nil
	}

	c.printTable([]*appbook.BookResponse{resp})
	return nil
}
