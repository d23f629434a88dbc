package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeItem_AddsNewLine(t *testing.T) {
	productID := primitive.NewObjectID()
	items := MergeItem(nil, CartItem{ProductID: productID, Quantity: 2, PriceAtAdd: 50000})

	assert.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestMergeItem_AccumulatesQuantityKeepsOldPrice(t *testing.T) {
	productID := primitive.NewObjectID()
	items := []CartItem{{ProductID: productID, Quantity: 1, PriceAtAdd: 50000}}

	items = MergeItem(items, CartItem{ProductID: productID, Quantity: 3, PriceAtAdd: 40000})

	assert.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].Quantity)
	// Giá giữ theo thời điểm thêm lần đầu
	assert.Equal(t, int64(50000), items[0].PriceAtAdd)
}

func TestMergeItems_MixedLines(t *testing.T) {
	existing := primitive.NewObjectID()
	incoming := primitive.NewObjectID()
	items := []CartItem{{ProductID: existing, Quantity: 1, PriceAtAdd: 30000}}

	items = MergeItems(items, []CartItem{
		{ProductID: existing, Quantity: 2, PriceAtAdd: 25000},
		{ProductID: incoming, Quantity: 5, PriceAtAdd: 80000},
	})

	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, int64(30000), items[0].PriceAtAdd)
	assert.Equal(t, incoming, items[1].ProductID)
	assert.Equal(t, int64(5), items[1].Quantity)
}
