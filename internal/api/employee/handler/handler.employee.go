// Package emphdl - handler nhân viên và xác thực.
package emphdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	empdto "github.com/dahlialee/Skybooks-sub000/internal/api/employee/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/employee/models"
	empsvc "github.com/dahlialee/Skybooks-sub000/internal/api/employee/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// EmployeeHandler xử lý các route nhân viên và đăng nhập
type EmployeeHandler struct {
	*basehdl.BaseHandler[models.Employee, empdto.EmployeeCreateInput, empdto.EmployeeUpdateInput]
	employeeService *empsvc.EmployeeService
}

// NewEmployeeHandler tạo mới EmployeeHandler
func NewEmployeeHandler() (*EmployeeHandler, error) {
	employeeService, err := empsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %w", err)
	}
	return &EmployeeHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Employee, empdto.EmployeeCreateInput, empdto.EmployeeUpdateInput](employeeService),
		employeeService: employeeService,
	}, nil
}

// InsertOne tạo nhân viên mới (ghi đè CRUD mặc định để hash mật khẩu)
func (h *EmployeeHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input empdto.EmployeeCreateInput
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

		data, err := h.employeeService.CreateEmployee(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLogin đăng nhập nhân viên bằng email và mật khẩu
func (h *EmployeeHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input empdto.EmployeeLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu đăng nhập không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employee, token, err := h.employeeService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login", c, map[string]interface{}{"email": input.Email, "success": false})
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("login", c, map[string]interface{}{"email": input.Email, "success": true})
		h.HandleResponse(c, fiber.Map{
			"employee": employee,
			"token":    token,
		}, nil)
		return nil
	})
}

// HandleLogout đăng xuất nhân viên hiện tại (xóa token)
func (h *EmployeeHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, ok := c.Locals("employee_id").(string)
		if !ok || employeeID == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		err := h.employeeService.Logout(c.Context(), utility.String2ObjectID(employeeID))
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile trả về thông tin nhân viên đang đăng nhập
func (h *EmployeeHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, ok := c.Locals("employee_id").(string)
		if !ok || employeeID == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		data, err := h.employeeService.FindOneById(c.Context(), utility.String2ObjectID(employeeID))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của nhân viên đang đăng nhập
func (h *EmployeeHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, ok := c.Locals("employee_id").(string)
		if !ok || employeeID == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input empdto.EmployeeChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu đổi mật khẩu không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.employeeService.ChangePassword(c.Context(), utility.String2ObjectID(employeeID), &input)
		if err == nil {
			logger.LogAuth("change_password", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleBlock khóa tài khoản nhân viên theo email
func (h *EmployeeHandler) HandleBlock(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input empdto.BlockEmployeeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.employeeService.BlockEmployee(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUnBlock mở khóa tài khoản nhân viên theo email
func (h *EmployeeHandler) HandleUnBlock(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input empdto.UnBlockEmployeeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.employeeService.UnBlockEmployee(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
