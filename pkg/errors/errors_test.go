package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("不带内部错误", func(t *testing.T) {
		err := New(ErrCodeInvalidParams, "Invalid input.")
		assert.Equal(t, "[40900] Invalid input.", err.Error())
	})

	t.Run("带内部错误", func(t *testing.T) {
		err := WrapCode(errors.New("disk I/O error"), ErrCodeDatabaseError, "Search failed.")
		assert.Equal(t, "[50001] Search failed.: disk I/O error", err.Error())
	})
}

func TestWrap_UnwrapChain(t *testing.T) {
	cause := errors.New("no such table: books")
	err := fmt.Errorf("search: %w", Wrap(cause, "Search failed."))

	assert.True(t, errors.Is(err, cause))
	assert.True(t, HasCode(err, ErrCodeInternal))
	assert.False(t, HasCode(err, ErrCodeDatabaseError))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errors.New("boom"), ErrCodeFileError, "Cannot write %s.", "results.txt")
	assert.Equal(t, ErrCodeFileError, err.Code)
	assert.Equal(t, "Cannot write results.txt.", err.Message)
}

func TestGetAppError(t *testing.T) {
	t.Run("已是AppError", func(t *testing.T) {
		notFound := New(ErrCodeBookNotFound, "Book not found.")
		appErr := GetAppError(fmt.Errorf("load: %w", notFound))
		require.NotNil(t, appErr)
		assert.Same(t, notFound, appErr)
	})

	t.Run("普通错误被包装为Internal", func(t *testing.T) {
		cause := errors.New("unexpected")
		appErr := GetAppError(cause)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Same(t, cause, appErr.Err)
	})

	t.Run("非AppError不会被识别", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("plain"), ErrCodeInternal))
	})
}
