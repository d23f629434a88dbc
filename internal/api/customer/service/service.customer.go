// Package customersvc - service khách hàng (Customer).
package customersvc

import (
	"context"
	"fmt"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	customerdto "github.com/dahlialee/Skybooks-sub000/internal/api/customer/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/customer/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService là cấu trúc chứa các phương thức liên quan đến khách hàng
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.Customer]
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Customer](col),
	}, nil
}

// ExcludeDeleted bổ sung điều kiện loại khách hàng đã xóa mềm vào filter
func ExcludeDeleted(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	if _, has := filter["isDeleted"]; !has {
		filter["isDeleted"] = bson.M{"$ne": true}
	}
	return filter
}

// CreateCustomer tạo khách hàng mới, hash mật khẩu nếu có
func (s *CustomerService) CreateCustomer(ctx context.Context, input *customerdto.CustomerCreateInput) (models.Customer, error) {
	var zero models.Customer

	customer := models.Customer{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Status:   input.Status,
	}
	if input.Password != "" {
		hashed, err := utility.HashPassword(input.Password)
		if err != nil {
			return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
		}
		customer.Password = hashed
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, customer)
}

// CreateTemporary tạo khách vãng lai cho checkout không đăng ký
func (s *CustomerService) CreateTemporary(ctx context.Context, input *customerdto.CustomerTemporaryInput) (models.Customer, error) {
	customer := models.Customer{
		FullName:    input.FullName,
		Phone:       input.Phone,
		Address:     input.Address,
		IsTemporary: true,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, customer)
}

// Register đăng ký tài khoản khách hàng với email và mật khẩu
func (s *CustomerService) Register(ctx context.Context, input *customerdto.CustomerRegisterInput) (models.Customer, error) {
	var zero models.Customer

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	customer := models.Customer{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Address:  input.Address,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, customer)
}

// Login xác thực khách hàng bằng email và mật khẩu, cấp JWT
func (s *CustomerService) Login(ctx context.Context, input *customerdto.CustomerLoginInput) (models.Customer, string, error) {
	var zero models.Customer

	customer, err := s.BaseServiceMongoImpl.FindOne(ctx, ExcludeDeleted(bson.M{"email": input.Email}), nil)
	if err != nil {
		return zero, "", common.ErrAccountNotFound
	}

	if customer.Password == "" || !utility.ComparePassword(customer.Password, input.Password) {
		return zero, "", common.ErrWrongPassword
	}

	token, err := utility.CreateToken(
		global.ServerConfig.JwtSecret,
		customer.ID.Hex(),
		"khách hàng",
		global.ServerConfig.JwtExpireHours,
	)
	if err != nil {
		return zero, "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return customer, token, nil
}

// SoftDeleteById đánh dấu khách hàng đã xóa thay vì xóa document
func (s *CustomerService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: bson.M{"isDeleted": true},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}
