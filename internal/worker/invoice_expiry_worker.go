// Package worker chứa các background worker chạy định kỳ.
package worker

import (
	"context"
	"time"

	salesmodels "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	salessvc "github.com/dahlialee/Skybooks-sub000/internal/api/sales/service"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InvoiceExpiryWorker tự động hủy các hóa đơn VNPay chưa thanh toán quá hạn.
// Hủy hóa đơn sẽ hoàn lại tồn kho đã giữ cho đơn đó.
type InvoiceExpiryWorker struct {
	invoiceService *salessvc.InvoiceService
	interval       time.Duration
	expireAfter    time.Duration
}

// NewInvoiceExpiryWorker tạo mới InvoiceExpiryWorker.
// interval dưới 1 phút sẽ nâng lên 5 phút, expireAfter dưới 15 phút nâng lên 30 phút.
func NewInvoiceExpiryWorker(interval, expireAfter time.Duration) (*InvoiceExpiryWorker, error) {
	invoiceService, err := salessvc.NewInvoiceService()
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = 5 * time.Minute
	}
	if expireAfter < 15*time.Minute {
		expireAfter = 30 * time.Minute
	}

	return &InvoiceExpiryWorker{
		invoiceService: invoiceService,
		interval:       interval,
		expireAfter:    expireAfter,
	}, nil
}

// Start chạy worker cho đến khi context bị hủy
func (w *InvoiceExpiryWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":    w.interval.String(),
		"expireAfter": w.expireAfter.String(),
	}).Info("Invoice expiry worker bắt đầu chạy")

	for {
		select {
		case <-ctx.Done():
			log.Info("Invoice expiry worker dừng")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce hủy một lượt các hóa đơn quá hạn, panic được nuốt để ticker chạy tiếp
func (w *InvoiceExpiryWorker) runOnce(ctx context.Context) {
	log := logger.GetAppLogger()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{"panic": r}).Error("Panic khi hủy hóa đơn quá hạn, chờ lần chạy tiếp theo")
		}
	}()

	cutoff := time.Now().Add(-w.expireAfter).UnixMilli()
	filter := bson.M{
		"paymentMethod": salesmodels.PaymentMethodVNPay,
		"paymentStatus": salesmodels.PaymentStatusUnpaid,
		"createdAt":     bson.M{"$lt": cutoff},
	}

	expired, err := w.invoiceService.Find(ctx, filter, nil)
	if err != nil {
		log.WithError(err).Error("Không truy vấn được hóa đơn quá hạn")
		return
	}

	for _, invoice := range expired {
		if _, err := w.invoiceService.Cancel(ctx, invoice.ID); err != nil {
			log.WithError(err).Errorf("Không hủy được hóa đơn quá hạn %s", invoice.Code)
			continue
		}
		log.Infof("Đã hủy hóa đơn VNPay quá hạn %s và hoàn kho", invoice.Code)
	}
}
