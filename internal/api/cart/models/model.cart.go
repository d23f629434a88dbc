// Package models - model giỏ hàng (Cart) thuộc domain cart.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestCustomerID là định danh giỏ hàng của khách chưa đăng nhập
const GuestCustomerID = "guest"

// CartItem là một dòng trong giỏ hàng
type CartItem struct {
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity   int64              `json:"quantity" bson:"quantity"`
	PriceAtAdd int64              `json:"priceAtAdd" bson:"priceAtAdd"` // Giá tại thời điểm thêm vào giỏ
}

// Cart đại diện cho giỏ hàng của một khách hàng.
// CustomerID là ObjectID hex của khách hàng hoặc giá trị "guest".
type Cart struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID string             `json:"customerId" bson:"customerId" index:"unique"`
	Items      []CartItem         `json:"items" bson:"items"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// MergeItem gộp một dòng vào danh sách theo quy tắc giỏ hàng:
// nếu sản phẩm đã có thì cộng dồn số lượng (giữ giá cũ), chưa có thì thêm dòng mới.
func MergeItem(items []CartItem, item CartItem) []CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// MergeItems gộp lần lượt nhiều dòng theo cùng quy tắc
func MergeItems(items []CartItem, incoming []CartItem) []CartItem {
	for _, item := range incoming {
		items = MergeItem(items, item)
	}
	return items
}
