package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle_Boundary(t *testing.T) {
	assert.NoError(t, ValidateTitle(strings.Repeat("a", 256)))
	assert.ErrorIs(t, ValidateTitle(strings.Repeat("a", 257)), ErrTitleTooLong)
	assert.ErrorIs(t, ValidateTitle(""), ErrTitleTooShort)
	assert.NoError(t, ValidateTitle("D"))
}

func TestValidateAuthor_CountsRunes(t *testing.T) {
	// 256个汉字超过256字节,但按字符计数仍合法
	assert.NoError(t, ValidateAuthor(strings.Repeat("鲁", 256)))
	assert.ErrorIs(t, ValidateAuthor(strings.Repeat("鲁", 257)), ErrAuthorTooLong)
	assert.ErrorIs(t, ValidateAuthor(""), ErrAuthorTooShort)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"3001", true},
		{"0000", true},
		{"300", false},
		{"30011", false},
		{"30a1", false},
		{"", false},
		{" 3001", false},
		{"-301", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateID(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidID)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("3004")
	require.NoError(t, err)
	assert.Equal(t, uint(3004), id)

	_, err = ParseID("abc")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestValidateQty(t *testing.T) {
	assert.NoError(t, ValidateQty("0"))
	assert.NoError(t, ValidateQty("9999999999"))
	assert.ErrorIs(t, ValidateQty("10000000000"), ErrInvalidQty)
	assert.ErrorIs(t, ValidateQty(""), ErrInvalidQty)
	assert.ErrorIs(t, ValidateQty("-1"), ErrInvalidQty)
	assert.ErrorIs(t, ValidateQty("1.5"), ErrInvalidQty)
}

func TestParseQty(t *testing.T) {
	qty, err := ParseQty("9999999999")
	require.NoError(t, err)
	assert.Equal(t, int64(9999999999), qty)

	// 前导零按数字解析
	qty, err = ParseQty("007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Dune", NormalizeName("dune"))
	assert.Equal(t, "Frank Herbert", NormalizeName("FRANK herbert"))
	assert.Equal(t, "The Hobbit", NormalizeName("the hobbit"))
	assert.Equal(t, "Harry Potter And The Philosopher's Stone", NormalizeName("harry potter and the philosopher's stone"))
	assert.Equal(t, "Ssa", NormalizeName("ßa"))
}
