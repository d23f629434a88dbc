// Package router đăng ký các route thuộc domain report (dashboard).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dahlialee/Skybooks-sub000/internal/api/middleware"
	reporthdl "github.com/dahlialee/Skybooks-sub000/internal/api/report/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký các route thống kê lên v1, toàn bộ yêu cầu quyền Report.Read
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("Report.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/revenue-by-day", []fiber.Handler{readMiddleware}, reportHandler.HandleRevenueByDay)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/revenue-by-month", []fiber.Handler{readMiddleware}, reportHandler.HandleRevenueByMonth)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/top-selling", []fiber.Handler{readMiddleware}, reportHandler.HandleTopSelling)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/counts", []fiber.Handler{readMiddleware}, reportHandler.HandleCounts)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/low-stock", []fiber.Handler{readMiddleware}, reportHandler.HandleLowStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/shipping-status", []fiber.Handler{readMiddleware}, reportHandler.HandleShippingStatusBreakdown)

	return nil
}
