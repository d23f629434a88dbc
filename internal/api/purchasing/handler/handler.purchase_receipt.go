// Package purchasinghdl - handler phiếu nhập kho.
package purchasinghdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	purchasingdto "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/models"
	purchasingsvc "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/service"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// PurchaseReceiptHandler xử lý các route phiếu nhập
type PurchaseReceiptHandler struct {
	*basehdl.BaseHandler[models.PurchaseReceipt, purchasingdto.PurchaseReceiptCreateInput, purchasingdto.PurchaseReceiptUpdateInput]
	receiptService *purchasingsvc.PurchaseReceiptService
}

// NewPurchaseReceiptHandler tạo mới PurchaseReceiptHandler
func NewPurchaseReceiptHandler() (*PurchaseReceiptHandler, error) {
	receiptService, err := purchasingsvc.NewPurchaseReceiptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase receipt service: %w", err)
	}
	return &PurchaseReceiptHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.PurchaseReceipt, purchasingdto.PurchaseReceiptCreateInput, purchasingdto.PurchaseReceiptUpdateInput](receiptService),
		receiptService: receiptService,
	}, nil
}

// InsertOne tạo phiếu nhập: tính tổng và cộng kho phía server
func (h *PurchaseReceiptHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input purchasingdto.PurchaseReceiptCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.receiptService.CreateReceipt(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "purchase_receipt", data.Code, c, map[string]interface{}{
				"totalAmount": data.TotalAmount,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById sửa phiếu nhập, điều chỉnh tồn kho theo chênh lệch dòng hàng
func (h *PurchaseReceiptHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input purchasingdto.PurchaseReceiptUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.receiptService.UpdateReceipt(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "purchase_receipt", data.Code, c, map[string]interface{}{
				"totalAmount": data.TotalAmount,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById hủy phiếu nhập và trừ lại tồn kho
func (h *PurchaseReceiptHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.receiptService.DeleteById(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "purchase_receipt", id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
