package purchasingsvc

import (
	"strings"
	"testing"

	models "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewReceiptCode(t *testing.T) {
	code := NewReceiptCode()

	assert.True(t, strings.HasPrefix(code, "PN"))
	assert.Len(t, code, 10)
	assert.NotEqual(t, code, NewReceiptCode())
}

func TestStockDelta(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	productC := primitive.NewObjectID()

	oldItems := []models.PurchaseReceiptItem{
		{ProductID: productA, Quantity: 10},
		{ProductID: productB, Quantity: 5},
	}
	newItems := []models.PurchaseReceiptItem{
		{ProductID: productA, Quantity: 10}, // không đổi
		{ProductID: productB, Quantity: 2},  // giảm 3
		{ProductID: productC, Quantity: 7},  // dòng mới
	}

	delta := StockDelta(oldItems, newItems)

	assert.NotContains(t, delta, productA)
	assert.Equal(t, int64(-3), delta[productB])
	assert.Equal(t, int64(7), delta[productC])
}

func TestStockDelta_RemovedLineReversesFully(t *testing.T) {
	productA := primitive.NewObjectID()

	oldItems := []models.PurchaseReceiptItem{{ProductID: productA, Quantity: 4}}

	delta := StockDelta(oldItems, nil)
	assert.Equal(t, int64(-4), delta[productA])

	// Tạo rồi hủy phiếu phải trả kho về mức ban đầu
	roundTrip := StockDelta(nil, oldItems)
	assert.Equal(t, int64(0), delta[productA]+roundTrip[productA])
}
