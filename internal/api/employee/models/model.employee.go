// Package models - model nhân viên (Employee) thuộc domain employee.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò nhân viên trong hệ thống
const (
	RoleManager    = "quản lý"
	RoleSalesStaff = "nhân viên bán hàng"
	RoleStockStaff = "nhân viên kho"
)

// Employee đại diện cho một nhân viên của cửa hàng
type Employee struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName  string             `json:"fullName" bson:"fullName" index:"single"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role" default:"nhân viên bán hàng"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Avatar    string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Token     string             `json:"-" bson:"token,omitempty" index:"unique,sparse"`
	IsBlock   bool               `json:"isBlock" bson:"isBlock"`
	BlockNote string             `json:"blockNote,omitempty" bson:"blockNote,omitempty"`
	Status    string             `json:"status" bson:"status" default:"hoạt động"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
