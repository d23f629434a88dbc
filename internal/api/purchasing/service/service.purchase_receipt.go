// Package purchasingsvc - service phiếu nhập kho.
package purchasingsvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"
	purchasingdto "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseReceiptService là cấu trúc chứa các phương thức liên quan đến phiếu nhập
type PurchaseReceiptService struct {
	*basesvc.BaseServiceMongoImpl[models.PurchaseReceipt]
	productService *catalogsvc.ProductService
}

// NewPurchaseReceiptService tạo mới PurchaseReceiptService
func NewPurchaseReceiptService() (*PurchaseReceiptService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PurchaseReceipts)
	if !exist {
		return nil, fmt.Errorf("failed to get purchase_receipts collection: %v", common.ErrNotFound)
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &PurchaseReceiptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PurchaseReceipt](col),
		productService:       productService,
	}, nil
}

// NewReceiptCode sinh mã phiếu nhập dạng "PN" + đoạn đầu của uuid
func NewReceiptCode() string {
	return "PN" + strings.ToUpper(strings.Split(uuid.New().String(), "-")[0])
}

// CreateReceipt tạo phiếu nhập: kiểm tra sản phẩm, tính tổng phía server
// rồi cộng tồn kho từng dòng trước khi ghi phiếu
func (s *PurchaseReceiptService) CreateReceipt(ctx context.Context, input *purchasingdto.PurchaseReceiptCreateInput) (models.PurchaseReceipt, error) {
	var zero models.PurchaseReceipt

	if input.PublisherID == "" && input.SupplierName == "" {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Phiếu nhập phải có nhà xuất bản hoặc tên nhà cung cấp",
			common.StatusBadRequest,
			nil,
		)
	}

	stockItems := make([]catalogsvc.StockItem, 0, len(input.Items))
	receiptItems := make([]models.PurchaseReceiptItem, 0, len(input.Items))
	var totalAmount int64

	for _, line := range input.Items {
		pid := utility.String2ObjectID(line.ProductID)
		if _, err := s.productService.FindOneById(ctx, pid); err != nil {
			return zero, common.NewError(
				common.ErrCodeBusinessStock,
				fmt.Sprintf("Sản phẩm %s không tồn tại", line.ProductID),
				common.StatusBadRequest,
				nil,
			)
		}

		lineTotal := line.UnitCost * line.Quantity
		totalAmount += lineTotal
		receiptItems = append(receiptItems, models.PurchaseReceiptItem{
			ProductID: pid,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
			Total:     lineTotal,
		})
		stockItems = append(stockItems, catalogsvc.StockItem{ProductID: pid, Quantity: line.Quantity})
	}

	if err := s.productService.IncreaseProductQuantity(ctx, stockItems); err != nil {
		return zero, err
	}

	receipt := models.PurchaseReceipt{
		Code:         NewReceiptCode(),
		SupplierName: input.SupplierName,
		EmployeeID:   utility.String2ObjectID(input.EmployeeID),
		Items:        receiptItems,
		TotalAmount:  totalAmount,
		Note:         input.Note,
	}
	if input.PublisherID != "" {
		receipt.PublisherID = utility.String2ObjectID(input.PublisherID)
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, receipt)
	if err != nil {
		// Ghi phiếu thất bại thì trừ lại phần kho vừa cộng
		if restoreErr := s.productService.ReduceProductQuantity(ctx, stockItems); restoreErr != nil {
			logger.GetErrorLogger().WithField("receipt_code", receipt.Code).WithField("error", restoreErr.Error()).Error("Trừ lại kho thất bại sau khi tạo phiếu nhập lỗi")
		}
		return zero, err
	}
	return created, nil
}

// StockDelta tính chênh lệch tồn kho khi thay dòng hàng cũ bằng dòng hàng mới:
// dương là phần phải cộng thêm, âm là phần phải trừ lại.
func StockDelta(oldItems []models.PurchaseReceiptItem, newItems []models.PurchaseReceiptItem) map[primitive.ObjectID]int64 {
	delta := make(map[primitive.ObjectID]int64)
	for _, item := range oldItems {
		delta[item.ProductID] -= item.Quantity
	}
	for _, item := range newItems {
		delta[item.ProductID] += item.Quantity
	}
	for pid, qty := range delta {
		if qty == 0 {
			delete(delta, pid)
		}
	}
	return delta
}

// UpdateReceipt cập nhật phiếu nhập. Khi dòng hàng thay đổi, tồn kho được
// điều chỉnh theo chênh lệch: trừ trước (có kiểm tra âm kho), cộng sau.
func (s *PurchaseReceiptService) UpdateReceipt(ctx context.Context, id primitive.ObjectID, input *purchasingdto.PurchaseReceiptUpdateInput) (models.PurchaseReceipt, error) {
	var zero models.PurchaseReceipt

	receipt, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: bson.M{}}
	if input.Note != "" {
		update.Set["note"] = input.Note
	}

	var reduceItems, increaseItems []catalogsvc.StockItem
	if len(input.Items) > 0 {
		newItems := make([]models.PurchaseReceiptItem, 0, len(input.Items))
		var totalAmount int64
		for _, line := range input.Items {
			pid := utility.String2ObjectID(line.ProductID)
			if _, err := s.productService.FindOneById(ctx, pid); err != nil {
				return zero, common.NewError(
					common.ErrCodeBusinessStock,
					fmt.Sprintf("Sản phẩm %s không tồn tại", line.ProductID),
					common.StatusBadRequest,
					nil,
				)
			}
			lineTotal := line.UnitCost * line.Quantity
			totalAmount += lineTotal
			newItems = append(newItems, models.PurchaseReceiptItem{
				ProductID: pid,
				Quantity:  line.Quantity,
				UnitCost:  line.UnitCost,
				Total:     lineTotal,
			})
		}

		for pid, qty := range StockDelta(receipt.Items, newItems) {
			if qty < 0 {
				reduceItems = append(reduceItems, catalogsvc.StockItem{ProductID: pid, Quantity: -qty})
			} else {
				increaseItems = append(increaseItems, catalogsvc.StockItem{ProductID: pid, Quantity: qty})
			}
		}

		if len(reduceItems) > 0 {
			if err := s.productService.ReduceProductQuantity(ctx, reduceItems); err != nil {
				return zero, common.NewError(
					common.ErrCodeBusinessStock,
					fmt.Sprintf("Không thể sửa phiếu nhập %s: tồn kho không đủ để trừ lại", receipt.Code),
					common.StatusBadRequest,
					nil,
				)
			}
		}
		if len(increaseItems) > 0 {
			if err := s.productService.IncreaseProductQuantity(ctx, increaseItems); err != nil {
				if len(reduceItems) > 0 {
					if restoreErr := s.productService.IncreaseProductQuantity(ctx, reduceItems); restoreErr != nil {
						logger.GetErrorLogger().WithField("receipt_code", receipt.Code).WithField("error", restoreErr.Error()).Error("Hoàn lại kho thất bại sau khi sửa phiếu nhập lỗi")
					}
				}
				return zero, err
			}
		}

		update.Set["items"] = newItems
		update.Set["totalAmount"] = totalAmount
	}

	if len(update.Set) == 0 {
		return receipt, nil
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		// Ghi phiếu thất bại thì đảo ngược phần kho vừa điều chỉnh
		if len(increaseItems) > 0 {
			if restoreErr := s.productService.ReduceProductQuantity(ctx, increaseItems); restoreErr != nil {
				logger.GetErrorLogger().WithField("receipt_code", receipt.Code).WithField("error", restoreErr.Error()).Error("Hoàn lại kho thất bại sau khi sửa phiếu nhập lỗi")
			}
		}
		if len(reduceItems) > 0 {
			if restoreErr := s.productService.IncreaseProductQuantity(ctx, reduceItems); restoreErr != nil {
				logger.GetErrorLogger().WithField("receipt_code", receipt.Code).WithField("error", restoreErr.Error()).Error("Hoàn lại kho thất bại sau khi sửa phiếu nhập lỗi")
			}
		}
		return zero, err
	}
	return updated, nil
}

// DeleteById hủy phiếu nhập và trừ lại tồn kho đã cộng.
// Nếu hàng đã bán khiến tồn kho không đủ để trừ thì từ chối hủy.
func (s *PurchaseReceiptService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	receipt, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	stockItems := make([]catalogsvc.StockItem, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		stockItems = append(stockItems, catalogsvc.StockItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.productService.ReduceProductQuantity(ctx, stockItems); err != nil {
		return common.NewError(
			common.ErrCodeBusinessStock,
			fmt.Sprintf("Không thể hủy phiếu nhập %s: tồn kho không đủ để trừ lại", receipt.Code),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// FindByCode tìm phiếu nhập theo mã
func (s *PurchaseReceiptService) FindByCode(ctx context.Context, code string) (models.PurchaseReceipt, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"code": code}, nil)
}
