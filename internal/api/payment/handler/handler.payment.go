// Package paymenthdl - handler thanh toán VNPay.
package paymenthdl

import (
	"fmt"
	"time"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	paymentdto "github.com/dahlialee/Skybooks-sub000/internal/api/payment/dto"
	paymentsvc "github.com/dahlialee/Skybooks-sub000/internal/api/payment/service"
	salesmodels "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	salessvc "github.com/dahlialee/Skybooks-sub000/internal/api/sales/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// PaymentHandler xử lý các route thanh toán VNPay
type PaymentHandler struct {
	invoiceService *salessvc.InvoiceService
}

// NewPaymentHandler tạo mới PaymentHandler
func NewPaymentHandler() (*PaymentHandler, error) {
	invoiceService, err := salessvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %w", err)
	}
	return &PaymentHandler{invoiceService: invoiceService}, nil
}

// queryParams gom toàn bộ query string thành map cho bước xác minh chữ ký
func queryParams(c fiber.Ctx) map[string]string {
	params := make(map[string]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	return params
}

func (h *PaymentHandler) vnpayConfig() paymentsvc.VNPayConfig {
	return paymentsvc.VNPayConfig{
		TmnCode:    global.ServerConfig.VNPay_TmnCode,
		HashSecret: global.ServerConfig.VNPay_HashSecret,
		PayURL:     global.ServerConfig.VNPay_Url,
		ReturnURL:  global.ServerConfig.VNPay_ReturnUrl,
	}
}

// HandleCreatePaymentURL dựng URL chuyển hướng sang cổng VNPay cho một hóa đơn
func (h *PaymentHandler) HandleCreatePaymentURL(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input paymentdto.PaymentURLInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		invoice, err := h.invoiceService.FindOneById(c.Context(), utility.String2ObjectID(input.InvoiceID))
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		if invoice.PaymentStatus != salesmodels.PaymentStatusUnpaid {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeBusinessPayment,
				fmt.Sprintf("Hóa đơn %s không ở trạng thái chờ thanh toán", invoice.Code),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		paymentURL, err := paymentsvc.BuildPaymentURL(h.vnpayConfig(), paymentsvc.PaymentRequest{
			InvoiceCode: invoice.Code,
			Amount:      invoice.TotalAmount,
			OrderInfo:   "Thanh toan hoa don " + invoice.Code,
			IPAddr:      c.IP(),
			BankCode:    input.BankCode,
			Locale:      input.Locale,
			CreateTime:  time.Now(),
		})
		if err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeBusinessPayment, err.Error(), common.StatusInternalServerError, nil))
			return nil
		}

		basehdl.WriteResponse(c, fiber.Map{
			"invoiceCode": invoice.Code,
			"paymentUrl":  paymentURL,
		}, nil)
		return nil
	})
}

// HandleVNPayReturn xác minh tham số VNPay gửi về trình duyệt sau thanh toán.
// Chữ ký hợp lệ và giao dịch thành công thì đánh dấu hóa đơn đã thanh toán.
func (h *PaymentHandler) HandleVNPayReturn(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result := paymentsvc.VerifyReturn(h.vnpayConfig(), queryParams(c))
		if !result.Valid {
			logger.LogAction("vnpay_return_invalid_signature", c, map[string]interface{}{
				"txnRef": result.TxnRef,
			})
			basehdl.WriteResponse(c, nil, common.ErrInvalidSignature)
			return nil
		}

		if result.Success {
			if _, err := h.invoiceService.MarkPaidByCode(c.Context(), result.TxnRef); err != nil {
				basehdl.WriteResponse(c, nil, err)
				return nil
			}
		}
		logger.LogAction("vnpay_return", c, map[string]interface{}{
			"txnRef":       result.TxnRef,
			"responseCode": result.ResponseCode,
			"success":      result.Success,
		})

		basehdl.WriteResponse(c, fiber.Map{
			"invoiceCode":  result.TxnRef,
			"responseCode": result.ResponseCode,
			"success":      result.Success,
		}, nil)
		return nil
	})
}

// HandleVNPayIPN nhận thông báo server-to-server của VNPay.
// Định dạng phản hồi {RspCode, Message} theo tài liệu tích hợp.
func (h *PaymentHandler) HandleVNPayIPN(c fiber.Ctx) error {
	ipnResponse := func(code, message string) error {
		return c.JSON(fiber.Map{"RspCode": code, "Message": message})
	}

	result := paymentsvc.VerifyReturn(h.vnpayConfig(), queryParams(c))
	if !result.Valid {
		return ipnResponse(paymentsvc.VNPayRespInvalidSignature, "Invalid signature")
	}

	invoice, err := h.invoiceService.FindByCode(c.Context(), result.TxnRef)
	if err != nil {
		return ipnResponse(paymentsvc.VNPayRespOrderNotFound, "Order not found")
	}
	if result.Amount != invoice.TotalAmount {
		return ipnResponse("04", "Invalid amount")
	}
	if invoice.PaymentStatus != salesmodels.PaymentStatusUnpaid {
		return ipnResponse("02", "Order already confirmed")
	}

	if result.Success {
		if _, err := h.invoiceService.MarkPaidByCode(c.Context(), result.TxnRef); err != nil {
			return ipnResponse("99", "Unknown error")
		}
	}
	logger.LogAction("vnpay_ipn", c, map[string]interface{}{
		"txnRef":       result.TxnRef,
		"responseCode": result.ResponseCode,
		"success":      result.Success,
	})
	return ipnResponse(paymentsvc.VNPayRespSuccess, "Confirm Success")
}
