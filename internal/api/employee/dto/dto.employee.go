package empdto

// EmployeeCreateInput đầu vào tạo nhân viên (CRUD).
type EmployeeCreateInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"omitempty,oneof='quản lý' 'nhân viên bán hàng' 'nhân viên kho'"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}

// EmployeeUpdateInput đầu vào cập nhật nhân viên.
type EmployeeUpdateInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}

// EmployeeLoginInput đầu vào đăng nhập nhân viên.
type EmployeeLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmployeeChangePasswordInput đầu vào đổi mật khẩu.
type EmployeeChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// BlockEmployeeInput đầu vào khóa tài khoản nhân viên.
type BlockEmployeeInput struct {
	Email string `json:"email" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockEmployeeInput đầu vào mở khóa tài khoản nhân viên.
type UnBlockEmployeeInput struct {
	Email string `json:"email" validate:"required"`
}
