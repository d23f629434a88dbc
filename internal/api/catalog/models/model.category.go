package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryProduct đại diện cho một danh mục sách
type CategoryProduct struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status" bson:"status" default:"hoạt động"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
