// Package models - các model thuộc domain catalog: sản phẩm, danh mục,
// nhà xuất bản, danh mục giảm giá.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product đại diện cho một đầu sách trong cửa hàng
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" index:"text"`
	Barcode       string             `json:"barcode,omitempty" bson:"barcode,omitempty" index:"unique,sparse"`
	Price         int64              `json:"price" bson:"price"` // Đơn vị: đồng
	StockQuantity int64              `json:"stockQuantity" bson:"stockQuantity"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Images        []string           `json:"images,omitempty" bson:"images,omitempty"`
	Author        string             `json:"author,omitempty" bson:"author,omitempty" index:"single"`
	PublishYear   int                `json:"publishYear,omitempty" bson:"publishYear,omitempty"`
	CategoryID    primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single"`
	PublisherID   primitive.ObjectID `json:"publisherId,omitempty" bson:"publisherId,omitempty" index:"single"`
	DiscountID    primitive.ObjectID `json:"discountId,omitempty" bson:"discountId,omitempty"`
	Status        string             `json:"status" bson:"status" default:"đang bán"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
