package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publisher đại diện cho một nhà xuất bản
type Publisher struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"single"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Status    string             `json:"status" bson:"status" default:"hoạt động"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
