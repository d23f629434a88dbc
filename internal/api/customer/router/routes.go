// Package router đăng ký các route thuộc domain customer.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "github.com/dahlialee/Skybooks-sub000/internal/api/customer/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route customer lên v1.
// Đăng ký/đăng nhập/khách vãng lai là public, quản lý khách hàng yêu cầu nhân viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}

	v1.Post("/customer/register", customerHandler.HandleRegister)
	v1.Post("/customer/login", customerHandler.HandleLogin)
	v1.Post("/customer/insert-temporary", customerHandler.HandleInsertTemporary)

	r.RegisterCRUDRoutes(v1, "/customer", customerHandler, apirouter.ReadWriteConfig, "Customer")

	return nil
}
