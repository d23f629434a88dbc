// Package models - model khách hàng (Customer) thuộc domain customer.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer đại diện cho một khách hàng của cửa hàng
type Customer struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName    string             `json:"fullName" bson:"fullName" index:"single"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Password    string             `json:"-" bson:"password,omitempty"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	IsTemporary bool               `json:"isTemporary" bson:"isTemporary"` // Khách vãng lai (guest checkout)
	IsDeleted   bool               `json:"isDeleted" bson:"isDeleted"`     // Xóa mềm
	Status      string             `json:"status" bson:"status" default:"hoạt động"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
