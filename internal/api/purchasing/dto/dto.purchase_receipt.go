package purchasingdto

// PurchaseReceiptItemInput một dòng hàng trong yêu cầu tạo phiếu nhập.
type PurchaseReceiptItemInput struct {
	ProductID string `json:"productId" validate:"required,object_id"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	UnitCost  int64  `json:"unitCost" validate:"required,gte=0"`
}

// PurchaseReceiptCreateInput đầu vào tạo phiếu nhập kho.
// Nguồn nhập là nhà xuất bản đã có (publisherId) hoặc nhà cung cấp tự do (supplierName).
type PurchaseReceiptCreateInput struct {
	PublisherID  string                     `json:"publisherId" validate:"omitempty,object_id"`
	SupplierName string                     `json:"supplierName" validate:"omitempty,no_xss,max=200"`
	EmployeeID   string                     `json:"employeeId" validate:"required,object_id"`
	Items        []PurchaseReceiptItemInput `json:"items" validate:"required,min=1,dive"`
	Note         string                     `json:"note" validate:"omitempty,max=1000"`
}

// PurchaseReceiptUpdateInput đầu vào cập nhật phiếu nhập.
// Nếu gửi items thì tồn kho được điều chỉnh theo chênh lệch từng dòng
// so với phiếu hiện tại.
type PurchaseReceiptUpdateInput struct {
	Items []PurchaseReceiptItemInput `json:"items" validate:"omitempty,min=1,dive"`
	Note  string                     `json:"note" validate:"omitempty,max=1000"`
}
