package book

// Book 图书实体(聚合根)
// 对应books表中的一行记录:编号、书名、作者、库存数量
type Book struct {
	ID     uint   // 编号(自增,种子数据为3001-3005)
	Title  string // 书名(全表唯一)
	Author string // 作者
	Qty    int64  // 库存数量
}

// NewBook 创建新图书(工厂方法)
// ID由数据库在插入时分配
func NewBook(title, author string, qty int64) *Book {
	return &Book{
		Title:  title,
		Author: author,
		Qty:    qty,
	}
}

// UpdateInfo 更新书名、作者
// 空字符串表示该字段不修改
func (b *Book) UpdateInfo(title, author string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
}

// UpdateQty 更新库存数量
// 业务规则:库存不能为负数,且不超过10位数字
func (b *Book) UpdateQty(qty int64) error {
	if qty < 0 || qty > MaxQty {
		return ErrInvalidQty
	}
	b.Qty = qty
	return nil
}
