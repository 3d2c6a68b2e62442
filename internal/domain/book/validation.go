package book

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 输入校验规则
const (
	MaxTextLength = 256        // 书名、作者最大字符数
	IDDigits      = 4          // 用户输入的编号位数
	MaxQtyDigits  = 10         // 数量最大位数
	MaxQty        = 9999999999 // 数量上限(10位数字)
)

// ValidateTitle 校验书名长度(1-256个字符)
func ValidateTitle(title string) error {
	return validateText(title, ErrTitleTooShort, ErrTitleTooLong)
}

// ValidateAuthor 校验作者长度(1-256个字符)
func ValidateAuthor(author string) error {
	return validateText(author, ErrAuthorTooShort, ErrAuthorTooLong)
}

// validateText 按字符(rune)计数,而不是字节
func validateText(value string, tooShort, tooLong error) error {
	n := utf8.RuneCountInString(value)
	switch {
	case n > MaxTextLength:
		return tooLong
	case n == 0:
		return tooShort
	}
	return nil
}

// ValidateID 校验用户输入的编号:必须是4位数字
// 注意:数据库中的编号可能超过4位,这里只约束用户输入
func ValidateID(id string) error {
	if len(id) != IDDigits || !isDigits(id) {
		return ErrInvalidID
	}
	return nil
}

// ParseID 校验并解析编号
func ParseID(id string) (uint, error) {
	if err := ValidateID(id); err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}

// ValidateQty 校验数量:1-10位数字
func ValidateQty(qty string) error {
	if len(qty) == 0 || len(qty) > MaxQtyDigits || !isDigits(qty) {
		return ErrInvalidQty
	}
	return nil
}

// ParseQty 校验并解析数量
func ParseQty(qty string) (int64, error) {
	if err := ValidateQty(qty); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(qty, 10, 64)
	if err != nil {
		return 0, ErrInvalidQty
	}
	return n, nil
}

// NormalizeName 书名、作者统一为首字母大写
// 例如:"the hobbit" → "The Hobbit"
func NormalizeName(s string) string {
	return cases.Title(language.English).String(s)
}

// isDigits 只接受ASCII数字
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
