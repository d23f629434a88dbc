// Package router đăng ký các route thuộc domain payment (VNPay).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	paymenthdl "github.com/dahlialee/Skybooks-sub000/internal/api/payment/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký các route thanh toán lên v1.
// Khách thanh toán từ trang bán hàng và VNPay gọi về nên toàn bộ là public,
// an toàn dựa trên chữ ký HMAC của cổng thanh toán.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	paymentHandler, err := paymenthdl.NewPaymentHandler()
	if err != nil {
		return fmt.Errorf("failed to create payment handler: %w", err)
	}

	v1.Post("/payment/vnpay/create-url", paymentHandler.HandleCreatePaymentURL)
	v1.Get("/payment/vnpay/return", paymentHandler.HandleVNPayReturn)
	v1.Get("/payment/vnpay/ipn", paymentHandler.HandleVNPayIPN)

	return nil
}
