// Package router đăng ký các route thuộc domain sales (hóa đơn).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dahlialee/Skybooks-sub000/internal/api/middleware"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
	saleshdl "github.com/dahlialee/Skybooks-sub000/internal/api/sales/handler"
)

// Register đăng ký tất cả route hóa đơn lên v1.
// Đặt hàng từ trang bán hàng là public, quản lý hóa đơn yêu cầu nhân viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	invoiceHandler, err := saleshdl.NewInvoiceHandler()
	if err != nil {
		return fmt.Errorf("failed to create invoice handler: %w", err)
	}

	// Route public cho trang bán hàng: đặt hàng và xem đơn của chính mình
	v1.Post("/invoice/create", invoiceHandler.InsertOne)
	v1.Get("/invoice/find-by-customer/:id", invoiceHandler.HandleFindByCustomer)

	// CRUD cho trang quản trị
	r.RegisterCRUDRoutes(v1, "/invoice", invoiceHandler, apirouter.ReadWriteConfig, "Invoice")

	updateMiddleware := middleware.AuthMiddleware("Invoice.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/invoice", "PUT", "/payment-status/:id", []fiber.Handler{updateMiddleware}, invoiceHandler.HandleUpdatePaymentStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/invoice", "PUT", "/shipping-status/:id", []fiber.Handler{updateMiddleware}, invoiceHandler.HandleUpdateShippingStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/invoice", "POST", "/cancel/:id", []fiber.Handler{updateMiddleware}, invoiceHandler.HandleCancel)

	return nil
}
