// Package router đăng ký các route thuộc domain purchasing (phiếu nhập kho).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	purchasinghdl "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route phiếu nhập lên v1, toàn bộ yêu cầu nhân viên kho
func Register(v1 fiber.Router, r *apirouter.Router) error {
	receiptHandler, err := purchasinghdl.NewPurchaseReceiptHandler()
	if err != nil {
		return fmt.Errorf("failed to create purchase receipt handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/purchase-receipt", receiptHandler, apirouter.ReadWriteConfig, "PurchaseReceipt")

	return nil
}
