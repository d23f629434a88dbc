// Package empsvc - service nhân viên (Employee) và xác thực.
package empsvc

import (
	"context"
	"fmt"

	empdto "github.com/dahlialee/Skybooks-sub000/internal/api/employee/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/employee/models"
	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeService là cấu trúc chứa các phương thức liên quan đến nhân viên
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[models.Employee]
}

// NewEmployeeService tạo mới EmployeeService
func NewEmployeeService() (*EmployeeService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}
	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Employee](col),
	}, nil
}

// CreateEmployee tạo nhân viên mới, mật khẩu được hash bcrypt trước khi lưu
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *empdto.EmployeeCreateInput) (models.Employee, error) {
	var zero models.Employee

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	employee := models.Employee{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Role:     input.Role,
		Address:  input.Address,
		Avatar:   input.Avatar,
		Status:   input.Status,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, employee)
}

// Login xác thực email và mật khẩu, cấp JWT và lưu token lên document nhân viên
func (s *EmployeeService) Login(ctx context.Context, input *empdto.EmployeeLoginInput) (models.Employee, string, error) {
	var zero models.Employee

	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, "", common.ErrAccountNotFound
	}

	if !utility.ComparePassword(employee.Password, input.Password) {
		return zero, "", common.ErrWrongPassword
	}

	if employee.IsBlock {
		return zero, "", common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+employee.BlockNote,
			common.StatusForbidden,
			nil,
		)
	}

	token, err := utility.CreateToken(
		global.ServerConfig.JwtSecret,
		employee.ID.Hex(),
		employee.Role,
		global.ServerConfig.JwtExpireHours,
	)
	if err != nil {
		return zero, "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	employee, err = s.BaseServiceMongoImpl.UpdateById(ctx, employee.ID, updateData)
	if err != nil {
		return zero, "", err
	}

	return employee, token, nil
}

// Logout xóa token hiện tại của nhân viên
func (s *EmployeeService) Logout(ctx context.Context, employeeID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, employeeID, updateData)
	return err
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *EmployeeService) ChangePassword(ctx context.Context, employeeID primitive.ObjectID, input *empdto.EmployeeChangePasswordInput) error {
	employee, err := s.BaseServiceMongoImpl.FindOneById(ctx, employeeID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(employee.Password, input.OldPassword) {
		return common.ErrWrongPassword
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	// Đổi mật khẩu đồng thời hủy token hiện tại, buộc đăng nhập lại
	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": hashed},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, employeeID, updateData)
	return err
}

// FindByToken tìm nhân viên đang giữ token (dùng cho middleware xác thực)
func (s *EmployeeService) FindByToken(ctx context.Context, token string) (models.Employee, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
}

// BlockEmployee khóa tài khoản nhân viên theo email và hủy token
func (s *EmployeeService) BlockEmployee(ctx context.Context, input *empdto.BlockEmployeeInput) (models.Employee, error) {
	var zero models.Employee
	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, common.ErrAccountNotFound
	}

	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"isBlock": true, "blockNote": input.Note},
		Unset: map[string]interface{}{"token": ""},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, employee.ID, updateData)
}

// UnBlockEmployee mở khóa tài khoản nhân viên theo email
func (s *EmployeeService) UnBlockEmployee(ctx context.Context, input *empdto.UnBlockEmployeeInput) (models.Employee, error) {
	var zero models.Employee
	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, common.ErrAccountNotFound
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isBlock": false, "blockNote": ""},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, employee.ID, updateData)
}
