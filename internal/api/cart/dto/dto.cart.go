package cartdto

// CartAddItemInput đầu vào thêm sản phẩm vào giỏ.
type CartAddItemInput struct {
	CustomerID string `json:"customerId" validate:"required"`
	ProductID  string `json:"productId" validate:"required,object_id"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

// CartUpdateItemInput đầu vào đặt lại số lượng một dòng trong giỏ.
// Quantity <= 0 đồng nghĩa xóa dòng.
type CartUpdateItemInput struct {
	CustomerID string `json:"customerId" validate:"required"`
	ProductID  string `json:"productId" validate:"required,object_id"`
	Quantity   int64  `json:"quantity"`
}

// CartRemoveItemInput đầu vào xóa một dòng khỏi giỏ.
type CartRemoveItemInput struct {
	CustomerID string `json:"customerId" validate:"required"`
	ProductID  string `json:"productId" validate:"required,object_id"`
}

// CartSyncInput đầu vào gộp giỏ khách vãng lai vào giỏ khách hàng sau đăng nhập.
type CartSyncInput struct {
	CustomerID string `json:"customerId" validate:"required,object_id"`
}
