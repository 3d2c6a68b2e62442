package book

// DemoBooks 空库时写入的演示数据
func DemoBooks() []*Book {
	return []*Book{
		{ID: 3001, Title: "A Tale of Two Cities", Author: "Charles Dickens", Qty: 30},
		{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Qty: 40},
		{ID: 3003, Title: "The Lion, the Witch and the Wardrobe", Author: "C. S. Lewis", Qty: 25},
		{ID: 3004, Title: "The Lord of the Rings", Author: "J.R.R Tolkien", Qty: 37},
		{ID: 3005, Title: "Alice in Wonderland", Author: "Lewis Carroll", Qty: 12},
	}
}
