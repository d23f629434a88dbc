// Package models - model hóa đơn (Invoice) thuộc domain sales.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái thanh toán của hóa đơn
const (
	PaymentStatusUnpaid    = "chưa thanh toán"
	PaymentStatusPaid      = "đã thanh toán"
	PaymentStatusCancelled = "đã hủy"
)

// Trạng thái giao hàng của hóa đơn
const (
	ShippingStatusPending    = "chờ xử lý"
	ShippingStatusDelivering = "đang giao"
	ShippingStatusDelivered  = "đã giao"
	ShippingStatusCancelled  = "đã hủy"
)

// Phương thức thanh toán
const (
	PaymentMethodCash  = "cash"
	PaymentMethodVNPay = "vnpay"
)

// InvoiceItem là một dòng hàng trong hóa đơn, tên và đơn giá là snapshot
// tại thời điểm tạo để không đổi khi sản phẩm thay đổi về sau
type InvoiceItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
	UnitPrice int64              `json:"unitPrice" bson:"unitPrice"`
	Total     int64              `json:"total" bson:"total"`
}

// Invoice đại diện cho một hóa đơn bán hàng
type Invoice struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code            string             `json:"code" bson:"code" index:"unique"`
	CustomerID      primitive.ObjectID `json:"customerId" bson:"customerId" index:"single"`
	EmployeeID      primitive.ObjectID `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	Items           []InvoiceItem      `json:"items" bson:"items"`
	TotalAmount     int64              `json:"totalAmount" bson:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod" default:"cash"`
	PaymentStatus   string             `json:"paymentStatus" bson:"paymentStatus" default:"chưa thanh toán"`
	ShippingStatus  string             `json:"shippingStatus" bson:"shippingStatus" default:"chờ xử lý"`
	ShippingAddress string             `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	Note            string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
