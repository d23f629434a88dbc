// Package router đăng ký các route thuộc domain cart.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	carthdl "github.com/dahlialee/Skybooks-sub000/internal/api/cart/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route cart lên v1.
// Giỏ hàng phục vụ trang bán hàng nên toàn bộ là public,
// riêng CRUD đọc cho trang quản trị yêu cầu nhân viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	cartHandler, err := carthdl.NewCartHandler()
	if err != nil {
		return fmt.Errorf("failed to create cart handler: %w", err)
	}

	v1.Get("/cart/get/:customerId", cartHandler.HandleGet)
	v1.Post("/cart/add-to-cart", cartHandler.HandleAddToCart)
	v1.Put("/cart/update-item", cartHandler.HandleUpdateItem)
	v1.Delete("/cart/remove-item", cartHandler.HandleRemoveItem)
	v1.Delete("/cart/clear/:customerId", cartHandler.HandleClear)
	v1.Post("/cart/sync", cartHandler.HandleSync)

	r.RegisterCRUDRoutes(v1, "/cart", cartHandler, apirouter.ReadOnlyConfig, "Cart")

	return nil
}
