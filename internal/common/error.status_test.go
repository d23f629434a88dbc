package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.True(t, errors.Is(err, ErrNotFound))

	// ErrNotFound đã convert thì giữ nguyên trạng
	assert.Equal(t, err, ConvertMongoError(err))
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := ConvertMongoError(duplicate)
	assert.True(t, errors.Is(err, ErrMongoDuplicate))
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		code     int32
		expected error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{999, ErrMongoSystem},
	}
	for _, tc := range cases {
		err := ConvertMongoError(mongo.CommandError{Code: tc.code})
		assert.True(t, errors.Is(err, tc.expected), "code %d", tc.code)
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	err := ConvertMongoError(errors.New("lỗi lạ"))

	var customErr *Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, ErrCodeDatabase.Code, customErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
}

func TestNewError_ErrorsIs(t *testing.T) {
	// Khớp sentinel khi cùng mã và cùng message
	err := NewError(ErrCodeBusinessStock, "Số lượng sản phẩm trong kho không đủ", StatusBadRequest, nil)
	assert.True(t, errors.Is(err, ErrOutOfStock))

	// Cùng mã nhưng khác message thì không khớp
	other := NewError(ErrCodeBusinessStock, "Sản phẩm X không đủ hàng", StatusBadRequest, nil)
	assert.False(t, errors.Is(other, ErrOutOfStock))
}
