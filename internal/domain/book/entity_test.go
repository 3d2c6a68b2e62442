package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_UpdateInfo_EmptyKeepsValue(t *testing.T) {
	b := NewBook("Dune", "Frank Herbert", 10)

	b.UpdateInfo("", "Brian Herbert")
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Brian Herbert", b.Author)

	b.UpdateInfo("Dune Messiah", "")
	assert.Equal(t, "Dune Messiah", b.Title)
	assert.Equal(t, "Brian Herbert", b.Author)
}

func TestBook_UpdateQty(t *testing.T) {
	b := NewBook("Dune", "Frank Herbert", 10)

	assert.NoError(t, b.UpdateQty(0))
	assert.Equal(t, int64(0), b.Qty)

	assert.ErrorIs(t, b.UpdateQty(-1), ErrInvalidQty)
	assert.ErrorIs(t, b.UpdateQty(MaxQty+1), ErrInvalidQty)
	assert.Equal(t, int64(0), b.Qty)
}
