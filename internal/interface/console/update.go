package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
)

const fieldMenu = "\nWhat field would you like to update: " +
	"\n\tT\t-\tBook Title" +
	"\n\tA\t-\tBook Author" +
	"\n\tQ\t-\tQuantity" +
	"\n\tALL\t-\tAll Fields\n"

// updateBook 主菜单2:查询、选择记录、选择字段后修改
func (c *Console) updateBook(ctx context.Context) error {
	target, err := c.selectForUpdate(ctx)
	if err != nil || target == nil {
		return err
	}

	req, ok, err := c.updateRequest(ctx, target.ID)
	if err != nil || !ok {
		return err
	}

	resp, err := c.uc.Update.Execute(ctx, req)
	if err != nil {
		c.report("update_book", err)
		c.println("Operation unsuccessful. Please try again.")
		return nil
	}

	c.printTable([]*appbook.BookResponse{resp})
	c.println("Information has been updated successfully as above.")
	return nil
}

// selectForUpdate 查询并选出要修改的记录,用户退出时返回nil
func (c *Console) selectForUpdate(ctx context.Context) (*appbook.BookResponse, error) {
	for {
		c.println("\nSearch for the book you would like to update.")

		books, err := c.search(ctx)
		if err != nil {
			return nil, err
		}

		switch len(books) {
		case 0:
			option, err := c.choose(ctx, noResultsPrompt, "", "T", "E")
			if err != nil || option == "E" {
				return nil, err
			}
		case 1:
			c.printTable(books)
			c.println("The record above will be updated.")
			return books[0], nil
		default:
			c.printTable(books)
			option, err := c.choose(ctx,
				"\nEnter 'U' to update a record from the table above or 'E' to exit: ",
				invalidOption, "U", "E")
			if err != nil || option == "E" {
				return nil, err
			}
			target, err := c.chooseFromResults(ctx, books)
			if err != nil {
				return nil, err
			}
			c.printf("Book with ID %d will be updated.\n", target.ID)
			return target, nil
		}
	}
}

// updateRequest 选择字段并读取新值
// 书名重复时用户选择退出,ok为false
func (c *Console) updateRequest(ctx context.Context, id uint) (req appbook.UpdateBookRequest, ok bool, err error) {
	req.ID = id

	field, err := c.choose(ctx, fieldMenu, invalidOption, "T", "A", "Q", "ALL")
	if err != nil {
		return req, false, err
	}

	if field == "T" || field == "ALL" {
		if req.Title, ok, err = c.enterUniqueTitle(ctx, id); err != nil || !ok {
			return req, false, err
		}
	}
	if field == "A" || field == "ALL" {
		if req.Author, err = c.enterText(ctx, authorField); err != nil {
			return req, false, err
		}
	}
	if field == "Q" || field == "ALL" {
		qty, err := c.enterQty(ctx)
		if err != nil {
			return req, false, err
		}
		req.Qty = &qty
	}
	return req, true, nil
}
