package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "DB_002", appErr.Code.Code)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := ConvertMongoError(dup)
	assert.ErrorIs(t, err, ErrConflict)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusConflict, appErr.StatusCode)
	assert.Equal(t, "DB_003", appErr.Code.Code)
}

func TestConvertMongoError_ProjectionMismatch(t *testing.T) {
	// 31253: include/exclude trộn lẫn trong projection
	for _, code := range []int32{16410, 31253, 31254} {
		err := ConvertMongoError(mongo.CommandError{Code: code, Message: "invalid projection"})

		var appErr *Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DB_004", appErr.Code.Code)
		assert.Equal(t, StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "invalid projection", appErr.Message)
	}
}

func TestConvertMongoError_OtherCommandError(t *testing.T) {
	err := ConvertMongoError(mongo.CommandError{Code: 2, Message: "bad value"})

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DB_002", appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}

func TestConvertMongoError_ClassifiedPassthrough(t *testing.T) {
	// Lỗi đã phân loại không bị convert lần hai
	assert.Same(t, ErrReadOnly, ConvertMongoError(ErrReadOnly))

	custom := NewError(ErrCodeBusinessOperation, "Cannot delete vendor: 3 transaction(s) still reference it", StatusConflict, nil)
	assert.Same(t, custom, ConvertMongoError(custom))
}

func TestConvertMongoError_Unknown(t *testing.T) {
	err := ConvertMongoError(errors.New("boom"))

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DB", appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}

func TestErrorIs_MatchesByCodeAndMessage(t *testing.T) {
	made := NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	assert.ErrorIs(t, made, ErrNotFound)

	other := NewError(ErrCodeDatabaseQuery, "something else", StatusNotFound, nil)
	assert.NotErrorIs(t, other, ErrNotFound)
}
