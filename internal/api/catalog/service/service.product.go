// Package catalogsvc - service catalog: sản phẩm, danh mục, nhà xuất bản, giảm giá.
package catalogsvc

import (
	"context"
	"fmt"

	models "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockItem mô tả một dòng thay đổi tồn kho
type StockItem struct {
	ProductID primitive.ObjectID
	Quantity  int64
}

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	discountService *basesvc.BaseServiceMongoImpl[models.DiscountCategory]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	discountCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Discounts)
	if !exist {
		return nil, fmt.Errorf("failed to get discount_categories collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCol),
		discountService:      basesvc.NewBaseServiceMongo[models.DiscountCategory](discountCol),
	}, nil
}

// ValidateStockReduction kiểm tra toàn bộ các dòng trước khi trừ kho.
// Trả về lỗi ngay khi một sản phẩm không tồn tại hoặc không đủ số lượng,
// đảm bảo không có dòng nào bị trừ trước khi toàn bộ đơn hợp lệ.
func (s *ProductService) ValidateStockReduction(ctx context.Context, items []StockItem) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				"Số lượng sản phẩm phải lớn hơn 0",
				common.StatusBadRequest,
				nil,
			)
		}
		product, err := s.BaseServiceMongoImpl.FindOneById(ctx, item.ProductID)
		if err != nil {
			return common.NewError(
				common.ErrCodeBusinessStock,
				fmt.Sprintf("Sản phẩm %s không tồn tại", item.ProductID.Hex()),
				common.StatusBadRequest,
				nil,
			)
		}
		if product.StockQuantity < item.Quantity {
			return common.NewError(
				common.ErrCodeBusinessStock,
				fmt.Sprintf("Số lượng sản phẩm '%s' trong kho không đủ (còn %d, cần %d)", product.Name, product.StockQuantity, item.Quantity),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	return nil
}

// ReduceProductQuantity trừ tồn kho theo danh sách dòng, validate toàn bộ trước khi trừ
func (s *ProductService) ReduceProductQuantity(ctx context.Context, items []StockItem) error {
	if err := s.ValidateStockReduction(ctx, items); err != nil {
		return err
	}

	for _, item := range items {
		updateData := &basesvc.UpdateData{
			Inc: bson.M{"stockQuantity": -item.Quantity},
		}
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, item.ProductID, updateData); err != nil {
			return err
		}
	}
	return nil
}

// IncreaseProductQuantity cộng tồn kho theo danh sách dòng
// (nhập kho hoặc hoàn kho khi hủy hóa đơn)
func (s *ProductService) IncreaseProductQuantity(ctx context.Context, items []StockItem) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				"Số lượng sản phẩm phải lớn hơn 0",
				common.StatusBadRequest,
				nil,
			)
		}
		updateData := &basesvc.UpdateData{
			Inc: bson.M{"stockQuantity": item.Quantity},
		}
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, item.ProductID, updateData); err != nil {
			return err
		}
	}
	return nil
}

// EffectivePrice tính giá bán hiện tại của sản phẩm, đã áp đợt giảm giá còn hiệu lực
func (s *ProductService) EffectivePrice(ctx context.Context, product *models.Product) int64 {
	if product.DiscountID.IsZero() {
		return product.Price
	}
	discount, err := s.discountService.FindOneById(ctx, product.DiscountID)
	if err != nil {
		return product.Price
	}
	if !discount.ActiveAt(utility.CurrentTimeInMilli()) {
		return product.Price
	}
	return discount.Apply(product.Price)
}

// FindByCategory tìm sản phẩm theo danh mục
func (s *ProductService) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"categoryId": categoryID}, nil)
}

// FindByPublisher tìm sản phẩm theo nhà xuất bản
func (s *ProductService) FindByPublisher(ctx context.Context, publisherID primitive.ObjectID) ([]models.Product, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"publisherId": publisherID}, nil)
}

// SearchByName tìm sản phẩm theo tên (text index)
func (s *ProductService) SearchByName(ctx context.Context, keyword string) ([]models.Product, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"$text": bson.M{"$search": keyword}}, nil)
}
