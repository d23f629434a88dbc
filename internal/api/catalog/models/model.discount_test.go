package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountActiveAt(t *testing.T) {
	discount := DiscountCategory{
		Percent: 20,
		Status:  "hoạt động",
		StartAt: 1000,
		EndAt:   2000,
	}

	assert.True(t, discount.ActiveAt(1000))
	assert.True(t, discount.ActiveAt(1500))
	assert.True(t, discount.ActiveAt(2000))
	assert.False(t, discount.ActiveAt(999))
	assert.False(t, discount.ActiveAt(2001))

	discount.Status = "ngừng hoạt động"
	assert.False(t, discount.ActiveAt(1500))
}

func TestDiscountActiveAt_OpenEnded(t *testing.T) {
	// Không đặt StartAt/EndAt thì hiệu lực mọi thời điểm
	discount := DiscountCategory{Percent: 10, Status: "hoạt động"}
	assert.True(t, discount.ActiveAt(1))
	assert.True(t, discount.ActiveAt(1<<50))
}

func TestDiscountApply(t *testing.T) {
	discount := DiscountCategory{Percent: 20, Status: "hoạt động"}
	assert.Equal(t, int64(80000), discount.Apply(100000))

	// Làm tròn xuống đơn vị đồng
	discount.Percent = 33
	assert.Equal(t, int64(67), discount.Apply(100))

	// Percent ngoài khoảng hợp lệ thì giữ nguyên giá
	discount.Percent = 0
	assert.Equal(t, int64(100000), discount.Apply(100000))
	discount.Percent = 101
	assert.Equal(t, int64(100000), discount.Apply(100000))
}
