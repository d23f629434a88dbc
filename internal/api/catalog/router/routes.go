// Package router đăng ký các route thuộc domain catalog: Product, Category, Publisher, Discount.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Trang bán hàng cần duyệt catalog không đăng nhập nên các route đọc là public,
// các thao tác ghi đi qua CRUD có phân quyền.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Route public cho trang bán hàng
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadOnlyConfig, "")
	v1.Get("/product/search", productHandler.HandleSearch)
	v1.Get("/product/find-by-category/:id", productHandler.HandleFindByCategory)
	v1.Get("/product/find-by-publisher/:id", productHandler.HandleFindByPublisher)
	v1.Get("/product/effective-price/:id", productHandler.HandleEffectivePrice)

	// Route quản trị sản phẩm (thêm/sửa/xóa)
	writeOnlyConfig := apirouter.ReadWriteConfig
	writeOnlyConfig.Find = false
	writeOnlyConfig.FindOne = false
	writeOnlyConfig.FindById = false
	writeOnlyConfig.FindIds = false
	writeOnlyConfig.Paginate = false
	writeOnlyConfig.Count = false
	writeOnlyConfig.Distinct = false
	writeOnlyConfig.Exists = false
	r.RegisterCRUDRoutes(v1, "/product", productHandler, writeOnlyConfig, "Product")

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadOnlyConfig, "")
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, writeOnlyConfig, "Category")

	publisherHandler, err := cataloghdl.NewPublisherHandler()
	if err != nil {
		return fmt.Errorf("failed to create publisher handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/publisher", publisherHandler, apirouter.ReadOnlyConfig, "")
	r.RegisterCRUDRoutes(v1, "/publisher", publisherHandler, writeOnlyConfig, "Publisher")

	discountHandler, err := cataloghdl.NewDiscountHandler()
	if err != nil {
		return fmt.Errorf("failed to create discount handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/discount", discountHandler, apirouter.ReadOnlyConfig, "")
	r.RegisterCRUDRoutes(v1, "/discount", discountHandler, writeOnlyConfig, "Discount")

	return nil
}
