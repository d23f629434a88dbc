// Package customerhdl - handler khách hàng.
package customerhdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	customerdto "github.com/dahlialee/Skybooks-sub000/internal/api/customer/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/customer/models"
	customersvc "github.com/dahlialee/Skybooks-sub000/internal/api/customer/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler xử lý các route khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[models.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput]
	customerService *customersvc.CustomerService
}

// NewCustomerHandler tạo mới CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput](customerService),
		customerService: customerService,
	}, nil
}

// InsertOne tạo khách hàng mới (ghi đè CRUD mặc định để hash mật khẩu)
func (h *CustomerHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.customerService.CreateCustomer(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find ghi đè CRUD mặc định để loại khách hàng đã xóa mềm khỏi danh sách
func (h *CustomerHandler) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		options, err := h.ProcessFindOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.customerService.Find(c.Context(), customersvc.ExcludeDeleted(filter), options)
		if data == nil {
			data = []models.Customer{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination ghi đè CRUD mặc định để loại khách hàng đã xóa mềm
func (h *CustomerHandler) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		options, err := h.ProcessFindOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.customerService.FindWithPagination(c.Context(), customersvc.ExcludeDeleted(filter), page, limit, options)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById ghi đè CRUD mặc định: xóa mềm thay vì xóa document
func (h *CustomerHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.customerService.SoftDeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleInsertTemporary tạo khách vãng lai cho checkout không đăng ký
func (h *CustomerHandler) HandleInsertTemporary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input customerdto.CustomerTemporaryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.customerService.CreateTemporary(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRegister đăng ký tài khoản khách hàng
func (h *CustomerHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input customerdto.CustomerRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.customerService.Register(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLogin đăng nhập khách hàng
func (h *CustomerHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input customerdto.CustomerLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, token, err := h.customerService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("customer_login", c, map[string]interface{}{"email": input.Email, "success": false})
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("customer_login", c, map[string]interface{}{"email": input.Email, "success": true})
		h.HandleResponse(c, fiber.Map{
			"customer": customer,
			"token":    token,
		}, nil)
		return nil
	})
}
