package paymentdto

// PaymentURLInput đầu vào tạo URL thanh toán VNPay cho một hóa đơn.
type PaymentURLInput struct {
	InvoiceID string `json:"invoiceId" validate:"required,object_id"`
	BankCode  string `json:"bankCode" validate:"omitempty,alphanum,max=20"`
	Locale    string `json:"locale" validate:"omitempty,oneof=vn en"`
}
