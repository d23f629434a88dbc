package salessvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInvoiceCode(t *testing.T) {
	code := NewInvoiceCode()

	assert.True(t, strings.HasPrefix(code, "HD"))
	assert.Len(t, code, 10)
	assert.Equal(t, strings.ToUpper(code), code)

	// Hai mã liên tiếp không được trùng nhau
	assert.NotEqual(t, code, NewInvoiceCode())
}
