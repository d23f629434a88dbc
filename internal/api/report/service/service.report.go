// Package reportsvc - các thống kê tổng hợp cho dashboard quản trị.
package reportsvc

import (
	"context"
	"fmt"

	salesmodels "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ngưỡng cảnh báo sắp hết hàng mặc định
const DefaultLowStockThreshold = 5

// ReportService chạy các pipeline thống kê trên nhiều collection
type ReportService struct {
	invoices  *mongo.Collection
	products  *mongo.Collection
	customers *mongo.Collection
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	invoices, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	products, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	customers, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	return &ReportService{invoices: invoices, products: products, customers: customers}, nil
}

// RevenuePoint doanh thu gộp theo một mốc thời gian
type RevenuePoint struct {
	Period       string `json:"period" bson:"_id"`
	Revenue      int64  `json:"revenue" bson:"revenue"`
	InvoiceCount int64  `json:"invoiceCount" bson:"invoiceCount"`
}

// revenueByFormat gộp doanh thu các hóa đơn đã thanh toán theo định dạng ngày
func (s *ReportService) revenueByFormat(ctx context.Context, dateFormat string, from, to int64) ([]RevenuePoint, error) {
	match := bson.M{"paymentStatus": salesmodels.PaymentStatusPaid}
	if from > 0 || to > 0 {
		createdAt := bson.M{}
		if from > 0 {
			createdAt["$gte"] = from
		}
		if to > 0 {
			createdAt["$lte"] = to
		}
		match["createdAt"] = createdAt
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   dateFormat,
				"date":     bson.M{"$toDate": "$createdAt"},
				"timezone": "Asia/Ho_Chi_Minh",
			}},
			"revenue":      bson.M{"$sum": "$totalAmount"},
			"invoiceCount": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []RevenuePoint{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// RevenueByDay doanh thu theo từng ngày trong khoảng [from, to] (mili giây)
func (s *ReportService) RevenueByDay(ctx context.Context, from, to int64) ([]RevenuePoint, error) {
	return s.revenueByFormat(ctx, "%Y-%m-%d", from, to)
}

// RevenueByMonth doanh thu theo từng tháng trong khoảng [from, to] (mili giây)
func (s *ReportService) RevenueByMonth(ctx context.Context, from, to int64) ([]RevenuePoint, error) {
	return s.revenueByFormat(ctx, "%Y-%m", from, to)
}

// TopProduct một sản phẩm trong bảng xếp hạng bán chạy
type TopProduct struct {
	ProductID    interface{} `json:"productId" bson:"_id"`
	Name         string      `json:"name" bson:"name"`
	QuantitySold int64       `json:"quantitySold" bson:"quantitySold"`
	Revenue      int64       `json:"revenue" bson:"revenue"`
}

// TopSellingProducts các sản phẩm bán chạy nhất theo số lượng đã bán
func (s *ReportService) TopSellingProducts(ctx context.Context, limit int64) ([]TopProduct, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	pipeline := []bson.M{
		{"$match": bson.M{"paymentStatus": bson.M{"$ne": salesmodels.PaymentStatusCancelled}}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":          "$items.productId",
			"name":         bson.M{"$last": "$items.name"},
			"quantitySold": bson.M{"$sum": "$items.quantity"},
			"revenue":      bson.M{"$sum": "$items.total"},
		}},
		{"$sort": bson.M{"quantitySold": -1}},
		{"$limit": limit},
	}

	cursor, err := s.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []TopProduct{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// DashboardCounts các con số tổng quan của trang dashboard
type DashboardCounts struct {
	CustomerCount       int64 `json:"customerCount"`
	ProductCount        int64 `json:"productCount"`
	PendingInvoiceCount int64 `json:"pendingInvoiceCount"`
	LowStockCount       int64 `json:"lowStockCount"`
}

// Counts đếm khách hàng (bỏ khách đã xóa mềm), sản phẩm,
// hóa đơn chờ xử lý và sản phẩm sắp hết hàng
func (s *ReportService) Counts(ctx context.Context, lowStockThreshold int64) (DashboardCounts, error) {
	var counts DashboardCounts
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	customerCount, err := s.customers.CountDocuments(ctx, bson.M{"isDeleted": bson.M{"$ne": true}})
	if err != nil {
		return counts, common.ConvertMongoError(err)
	}
	productCount, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return counts, common.ConvertMongoError(err)
	}
	pendingCount, err := s.invoices.CountDocuments(ctx, bson.M{"shippingStatus": salesmodels.ShippingStatusPending})
	if err != nil {
		return counts, common.ConvertMongoError(err)
	}
	lowStockCount, err := s.products.CountDocuments(ctx, bson.M{"stockQuantity": bson.M{"$lte": lowStockThreshold}})
	if err != nil {
		return counts, common.ConvertMongoError(err)
	}

	counts.CustomerCount = customerCount
	counts.ProductCount = productCount
	counts.PendingInvoiceCount = pendingCount
	counts.LowStockCount = lowStockCount
	return counts, nil
}

// LowStockProduct sản phẩm dưới ngưỡng tồn kho
type LowStockProduct struct {
	ProductID     interface{} `json:"productId" bson:"_id"`
	Name          string      `json:"name" bson:"name"`
	StockQuantity int64       `json:"stockQuantity" bson:"stockQuantity"`
}

// LowStockProducts liệt kê sản phẩm có tồn kho nhỏ hơn hoặc bằng ngưỡng
func (s *ReportService) LowStockProducts(ctx context.Context, threshold int64) ([]LowStockProduct, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	pipeline := []bson.M{
		{"$match": bson.M{"stockQuantity": bson.M{"$lte": threshold}}},
		{"$project": bson.M{"name": 1, "stockQuantity": 1}},
		{"$sort": bson.M{"stockQuantity": 1}},
	}

	cursor, err := s.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []LowStockProduct{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// ShippingStatusCount số hóa đơn theo từng trạng thái giao hàng
type ShippingStatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// ShippingStatusBreakdown gộp hóa đơn theo trạng thái giao hàng
func (s *ReportService) ShippingStatusBreakdown(ctx context.Context) ([]ShippingStatusCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$shippingStatus",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := s.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []ShippingStatusCount{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
