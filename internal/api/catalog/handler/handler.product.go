// Package cataloghdl - handler catalog: sản phẩm, danh mục, nhà xuất bản, giảm giá.
package cataloghdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	catalogdto "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các route sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService),
		productService: productService,
	}, nil
}

// HandleSearch tìm sản phẩm theo từ khóa tên (text index)
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		keyword := c.Query("q")
		if keyword == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Từ khóa tìm kiếm không được để trống",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.productService.SearchByName(c.Context(), keyword)
		if data == nil {
			data = []models.Product{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindByCategory liệt kê sản phẩm thuộc một danh mục
func (h *ProductHandler) HandleFindByCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.productService.FindByCategory(c.Context(), id)
		if data == nil {
			data = []models.Product{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindByPublisher liệt kê sản phẩm thuộc một nhà xuất bản
func (h *ProductHandler) HandleFindByPublisher(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.productService.FindByPublisher(c.Context(), id)
		if data == nil {
			data = []models.Product{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleEffectivePrice trả về giá bán hiện tại của sản phẩm (đã áp giảm giá)
func (h *ProductHandler) HandleEffectivePrice(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"productId":      product.ID.Hex(),
			"price":          product.Price,
			"effectivePrice": h.productService.EffectivePrice(c.Context(), &product),
		}, nil)
		return nil
	})
}
