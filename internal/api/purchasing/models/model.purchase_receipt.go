package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PurchaseReceiptItem một dòng hàng nhập kho
type PurchaseReceiptItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
	UnitCost  int64              `json:"unitCost" bson:"unitCost"` // giá nhập một đơn vị, đơn vị đồng
	Total     int64              `json:"total" bson:"total"`
}

// PurchaseReceipt là phiếu nhập kho
type PurchaseReceipt struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Code         string                `json:"code" bson:"code" index:"unique"`
	PublisherID  primitive.ObjectID    `json:"publisherId,omitempty" bson:"publisherId,omitempty" index:"single"`
	SupplierName string                `json:"supplierName,omitempty" bson:"supplierName,omitempty"`
	EmployeeID   primitive.ObjectID    `json:"employeeId" bson:"employeeId" index:"single"`
	Items        []PurchaseReceiptItem `json:"items" bson:"items"`
	TotalAmount  int64                 `json:"totalAmount" bson:"totalAmount"`
	Note         string                `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt    int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                 `json:"updatedAt" bson:"updatedAt"`
}
