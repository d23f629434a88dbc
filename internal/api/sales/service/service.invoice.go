// Package salessvc - service hóa đơn bán hàng (Invoice).
package salessvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	cartsvc "github.com/dahlialee/Skybooks-sub000/internal/api/cart/service"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"
	salesdto "github.com/dahlialee/Skybooks-sub000/internal/api/sales/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceService là cấu trúc chứa các phương thức liên quan đến hóa đơn
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
	productService *catalogsvc.ProductService
	cartService    *cartsvc.CartService
}

// NewInvoiceService tạo mới InvoiceService
func NewInvoiceService() (*InvoiceService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, err
	}
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](col),
		productService:       productService,
		cartService:          cartService,
	}, nil
}

// NewInvoiceCode sinh mã hóa đơn dạng "HD" + đoạn đầu của uuid
func NewInvoiceCode() string {
	return "HD" + strings.ToUpper(strings.Split(uuid.New().String(), "-")[0])
}

// CreateInvoice tạo hóa đơn: snapshot tên/đơn giá từ sản phẩm, tính tổng phía
// server, trừ tồn kho (validate toàn bộ trước) và xóa giỏ hàng của khách
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *salesdto.InvoiceCreateInput) (models.Invoice, error) {
	var zero models.Invoice

	stockItems := make([]catalogsvc.StockItem, 0, len(input.Items))
	invoiceItems := make([]models.InvoiceItem, 0, len(input.Items))
	var totalAmount int64

	for _, line := range input.Items {
		pid := utility.String2ObjectID(line.ProductID)
		product, err := s.productService.FindOneById(ctx, pid)
		if err != nil {
			return zero, common.NewError(
				common.ErrCodeBusinessStock,
				fmt.Sprintf("Sản phẩm %s không tồn tại", line.ProductID),
				common.StatusBadRequest,
				nil,
			)
		}

		unitPrice := s.productService.EffectivePrice(ctx, &product)
		lineTotal := unitPrice * line.Quantity
		totalAmount += lineTotal

		invoiceItems = append(invoiceItems, models.InvoiceItem{
			ProductID: pid,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
		})
		stockItems = append(stockItems, catalogsvc.StockItem{ProductID: pid, Quantity: line.Quantity})
	}

	// Trừ kho trước khi ghi hóa đơn, toàn bộ dòng được validate trước khi trừ
	if err := s.productService.ReduceProductQuantity(ctx, stockItems); err != nil {
		return zero, err
	}

	invoice := models.Invoice{
		Code:            NewInvoiceCode(),
		CustomerID:      utility.String2ObjectID(input.CustomerID),
		Items:           invoiceItems,
		TotalAmount:     totalAmount,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		Note:            input.Note,
	}
	if input.EmployeeID != "" {
		invoice.EmployeeID = utility.String2ObjectID(input.EmployeeID)
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, invoice)
	if err != nil {
		// Ghi hóa đơn thất bại thì hoàn lại kho đã trừ
		if restoreErr := s.productService.IncreaseProductQuantity(ctx, stockItems); restoreErr != nil {
			logger.GetErrorLogger().WithField("invoice_code", invoice.Code).WithField("error", restoreErr.Error()).Error("Hoàn kho thất bại sau khi tạo hóa đơn lỗi")
		}
		return zero, err
	}

	// Đặt hàng xong thì giỏ của khách được làm rỗng
	if err := s.cartService.Clear(ctx, input.CustomerID); err != nil {
		logger.GetErrorLogger().WithField("customer_id", input.CustomerID).WithField("error", err.Error()).Error("Xóa giỏ hàng thất bại sau khi tạo hóa đơn")
	}

	return created, nil
}

// UpdatePaymentStatus cập nhật trạng thái thanh toán, chuyển sang "đã hủy" sẽ hoàn kho
func (s *InvoiceService) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Invoice, error) {
	var zero models.Invoice

	invoice, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if invoice.PaymentStatus == models.PaymentStatusCancelled {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Hóa đơn đã hủy, không thể thay đổi trạng thái thanh toán",
			common.StatusBadRequest,
			nil,
		)
	}

	if status == models.PaymentStatusCancelled {
		return s.Cancel(ctx, id)
	}

	updateData := &basesvc.UpdateData{
		Set: bson.M{"paymentStatus": status},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// UpdateShippingStatus cập nhật trạng thái giao hàng
func (s *InvoiceService) UpdateShippingStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Invoice, error) {
	var zero models.Invoice

	invoice, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if invoice.ShippingStatus == models.ShippingStatusDelivered && status != models.ShippingStatusDelivered {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Hóa đơn đã giao, không thể thay đổi trạng thái giao hàng",
			common.StatusBadRequest,
			nil,
		)
	}

	updateData := &basesvc.UpdateData{
		Set: bson.M{"shippingStatus": status},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// Cancel hủy hóa đơn và hoàn lại tồn kho của từng dòng
func (s *InvoiceService) Cancel(ctx context.Context, id primitive.ObjectID) (models.Invoice, error) {
	var zero models.Invoice

	invoice, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if invoice.PaymentStatus == models.PaymentStatusCancelled {
		return invoice, nil
	}

	stockItems := make([]catalogsvc.StockItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		stockItems = append(stockItems, catalogsvc.StockItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.productService.IncreaseProductQuantity(ctx, stockItems); err != nil {
		return zero, err
	}

	updateData := &basesvc.UpdateData{
		Set: bson.M{
			"paymentStatus":  models.PaymentStatusCancelled,
			"shippingStatus": models.ShippingStatusCancelled,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// FindByCustomer liệt kê hóa đơn của một khách hàng
func (s *InvoiceService) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Invoice, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"customerId": customerID}, nil)
}

// FindByCode tìm hóa đơn theo mã (dùng cho callback thanh toán VNPay)
func (s *InvoiceService) FindByCode(ctx context.Context, code string) (models.Invoice, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"code": code}, nil)
}

// MarkPaidByCode đánh dấu hóa đơn đã thanh toán theo mã
func (s *InvoiceService) MarkPaidByCode(ctx context.Context, code string) (models.Invoice, error) {
	var zero models.Invoice
	invoice, err := s.FindByCode(ctx, code)
	if err != nil {
		return zero, err
	}
	updateData := &basesvc.UpdateData{
		Set: bson.M{"paymentStatus": models.PaymentStatusPaid},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, invoice.ID, updateData)
}
