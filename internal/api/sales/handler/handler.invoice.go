// Package saleshdl - handler hóa đơn bán hàng.
package saleshdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	salesdto "github.com/dahlialee/Skybooks-sub000/internal/api/sales/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	salessvc "github.com/dahlialee/Skybooks-sub000/internal/api/sales/service"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// InvoiceHandler xử lý các route hóa đơn
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, salesdto.InvoiceCreateInput, salesdto.InvoiceUpdateInput]
	invoiceService *salessvc.InvoiceService
}

// NewInvoiceHandler tạo mới InvoiceHandler
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := salessvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %w", err)
	}
	return &InvoiceHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Invoice, salesdto.InvoiceCreateInput, salesdto.InvoiceUpdateInput](invoiceService),
		invoiceService: invoiceService,
	}, nil
}

// InsertOne tạo hóa đơn: snapshot dòng hàng, tính tổng và trừ kho phía server
func (h *InvoiceHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input salesdto.InvoiceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.invoiceService.CreateInvoice(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "invoice", data.Code, c, map[string]interface{}{
				"totalAmount":   data.TotalAmount,
				"paymentMethod": data.PaymentMethod,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdatePaymentStatus cập nhật trạng thái thanh toán của hóa đơn
func (h *InvoiceHandler) HandleUpdatePaymentStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input salesdto.InvoicePaymentStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.invoiceService.UpdatePaymentStatus(c.Context(), id, input.PaymentStatus)
		if err == nil {
			logger.LogCRUD("update", "invoice", data.Code, c, map[string]interface{}{
				"paymentStatus": input.PaymentStatus,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateShippingStatus cập nhật trạng thái giao hàng của hóa đơn
func (h *InvoiceHandler) HandleUpdateShippingStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input salesdto.InvoiceShippingStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.invoiceService.UpdateShippingStatus(c.Context(), id, input.ShippingStatus)
		if err == nil {
			logger.LogCRUD("update", "invoice", data.Code, c, map[string]interface{}{
				"shippingStatus": input.ShippingStatus,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCancel hủy hóa đơn và hoàn lại tồn kho
func (h *InvoiceHandler) HandleCancel(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.invoiceService.Cancel(c.Context(), id)
		if err == nil {
			logger.LogCRUD("cancel", "invoice", data.Code, c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindByCustomer liệt kê hóa đơn của một khách hàng
func (h *InvoiceHandler) HandleFindByCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.invoiceService.FindByCustomer(c.Context(), id)
		if data == nil {
			data = []models.Invoice{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
