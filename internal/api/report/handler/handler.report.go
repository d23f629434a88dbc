// Package reporthdl - handler thống kê dashboard.
package reporthdl

import (
	"fmt"
	"strconv"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	reportsvc "github.com/dahlialee/Skybooks-sub000/internal/api/report/service"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các route thống kê
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// queryInt64 đọc một tham số số nguyên từ query, lỗi hoặc thiếu trả về 0
func queryInt64(c fiber.Ctx, name string) int64 {
	value, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// HandleRevenueByDay doanh thu theo ngày, khoảng thời gian lấy từ ?from=&to= (mili giây)
func (h *ReportHandler) HandleRevenueByDay(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.RevenueByDay(c.Context(), queryInt64(c, "from"), queryInt64(c, "to"))
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}

// HandleRevenueByMonth doanh thu theo tháng, khoảng thời gian lấy từ ?from=&to= (mili giây)
func (h *ReportHandler) HandleRevenueByMonth(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.RevenueByMonth(c.Context(), queryInt64(c, "from"), queryInt64(c, "to"))
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}

// HandleTopSelling sản phẩm bán chạy, số lượng lấy từ ?limit=
func (h *ReportHandler) HandleTopSelling(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.TopSellingProducts(c.Context(), queryInt64(c, "limit"))
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}

// HandleCounts các con số tổng quan, ngưỡng tồn kho lấy từ ?threshold=
func (h *ReportHandler) HandleCounts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.Counts(c.Context(), queryInt64(c, "threshold"))
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}

// HandleLowStock sản phẩm sắp hết hàng, ngưỡng lấy từ ?threshold=
func (h *ReportHandler) HandleLowStock(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.LowStockProducts(c.Context(), queryInt64(c, "threshold"))
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}

// HandleShippingStatusBreakdown số hóa đơn theo từng trạng thái giao hàng
func (h *ReportHandler) HandleShippingStatusBreakdown(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.reportService.ShippingStatusBreakdown(c.Context())
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}
