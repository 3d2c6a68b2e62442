package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
)

const noResultsPrompt = "\nNo results found." +
	"\nEnter 'T' to try again or 'E' to exit: "

// deleteBook 主菜单4:查询后删除
// 只有一条结果时直接删除;多条结果时从表格中选择编号
// 删除失败时重新查询
func (c *Console) deleteBook(ctx context.Context) error {
	for {
		c.println("Search for the book you would like to delete.")

		books, err := c.search(ctx)
		if err != nil {
			return err
		}

		var target *appbook.BookResponse
		switch len(books) {
		case 0:
			option, err := c.choose(ctx, noResultsPrompt, "", "T", "E")
			if err != nil || option == "E" {
				return err
			}
			continue
		case 1:
			target = books[0]
		default:
			c.printTable(books)
			option, err := c.choose(ctx,
				"\nEnter 'D' to delete a record from the table above or 'E' to exit: ",
				invalidOption, "D", "E")
			if err != nil || option == "E" {
				return err
			}
			if target, err = c.chooseFromResults(ctx, books); err != nil {
				return err
			}
		}

		if err := c.uc.Delete.Execute(ctx, target.ID); err != nil {
			c.report("delete_book", err)
			c.println("Operation unsuccessful. Please try again.")
			continue
		}
		c.printf("Book with ID %d has been deleted.\n", target.ID)
		return nil
	}
}
