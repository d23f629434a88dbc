package salesdto

// InvoiceItemInput một dòng hàng trong yêu cầu tạo hóa đơn.
// Tên và đơn giá do server snapshot từ sản phẩm, client chỉ gửi id và số lượng.
type InvoiceItemInput struct {
	ProductID string `json:"productId" validate:"required,object_id"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// InvoiceCreateInput đầu vào tạo hóa đơn.
type InvoiceCreateInput struct {
	CustomerID      string             `json:"customerId" validate:"required,object_id"`
	EmployeeID      string             `json:"employeeId" validate:"omitempty,object_id"`
	Items           []InvoiceItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string             `json:"paymentMethod" validate:"omitempty,oneof=cash vnpay"`
	ShippingAddress string             `json:"shippingAddress"`
	Note            string             `json:"note"`
}

// InvoiceUpdateInput đầu vào cập nhật hóa đơn (địa chỉ giao, ghi chú).
type InvoiceUpdateInput struct {
	ShippingAddress string `json:"shippingAddress"`
	Note            string `json:"note"`
}

// InvoicePaymentStatusInput đầu vào cập nhật trạng thái thanh toán.
type InvoicePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof='chưa thanh toán' 'đã thanh toán' 'đã hủy'"`
}

// InvoiceShippingStatusInput đầu vào cập nhật trạng thái giao hàng.
type InvoiceShippingStatusInput struct {
	ShippingStatus string `json:"shippingStatus" validate:"required,oneof='chờ xử lý' 'đang giao' 'đã giao' 'đã hủy'"`
}
