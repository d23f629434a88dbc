// Package carthdl - handler giỏ hàng.
package carthdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	cartdto "github.com/dahlialee/Skybooks-sub000/internal/api/cart/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/cart/models"
	cartsvc "github.com/dahlialee/Skybooks-sub000/internal/api/cart/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CartHandler xử lý các route giỏ hàng
type CartHandler struct {
	*basehdl.BaseHandler[models.Cart, cartdto.CartAddItemInput, cartdto.CartUpdateItemInput]
	cartService *cartsvc.CartService
}

// NewCartHandler tạo mới CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %w", err)
	}
	return &CartHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Cart, cartdto.CartAddItemInput, cartdto.CartUpdateItemInput](cartService),
		cartService: cartService,
	}, nil
}

// HandleGet trả về giỏ hàng theo customerId, tạo giỏ rỗng nếu chưa có.
// customerId là ObjectID hex hoặc giá trị "guest".
func (h *CartHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		customerID := c.Params("customerId")
		if customerID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"customerId không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.cartService.GetOrCreate(c.Context(), customerID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAddToCart thêm sản phẩm vào giỏ (gộp dòng nếu sản phẩm đã có)
func (h *CartHandler) HandleAddToCart(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input cartdto.CartAddItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.cartService.AddItem(c.Context(), input.CustomerID, input.ProductID, input.Quantity)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateItem đặt lại số lượng một dòng trong giỏ
func (h *CartHandler) HandleUpdateItem(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input cartdto.CartUpdateItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.cartService.UpdateItem(c.Context(), input.CustomerID, input.ProductID, input.Quantity)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRemoveItem xóa một dòng khỏi giỏ
func (h *CartHandler) HandleRemoveItem(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input cartdto.CartRemoveItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.cartService.RemoveItem(c.Context(), input.CustomerID, input.ProductID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleClear xóa toàn bộ giỏ hàng của một khách
func (h *CartHandler) HandleClear(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		customerID := c.Params("customerId")
		if customerID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"customerId không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		err := h.cartService.Clear(c.Context(), customerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSync gộp giỏ khách vãng lai vào giỏ khách hàng sau đăng nhập
func (h *CartHandler) HandleSync(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input cartdto.CartSyncInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.cartService.Sync(c.Context(), input.CustomerID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
