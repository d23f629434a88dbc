package customerdto

// CustomerCreateInput đầu vào tạo khách hàng (CRUD).
type CustomerCreateInput struct {
	FullName string `json:"fullName" validate:"required,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"omitempty,strong_password"`
	Address  string `json:"address"`
	Status   string `json:"status"`
}

// CustomerUpdateInput đầu vào cập nhật khách hàng.
type CustomerUpdateInput struct {
	FullName string `json:"fullName" validate:"omitempty,no_xss"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Status   string `json:"status"`
}

// CustomerTemporaryInput đầu vào tạo khách vãng lai khi checkout không đăng ký.
type CustomerTemporaryInput struct {
	FullName string `json:"fullName" validate:"required,no_xss"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
}

// CustomerRegisterInput đầu vào đăng ký tài khoản khách hàng.
type CustomerRegisterInput struct {
	FullName string `json:"fullName" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,strong_password"`
	Address  string `json:"address"`
}

// CustomerLoginInput đầu vào đăng nhập khách hàng.
type CustomerLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
