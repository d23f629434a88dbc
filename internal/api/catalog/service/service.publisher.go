package catalogsvc

import (
	"context"
	"fmt"

	models "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublisherService là cấu trúc chứa các phương thức liên quan đến nhà xuất bản
type PublisherService struct {
	*basesvc.BaseServiceMongoImpl[models.Publisher]
	productService *basesvc.BaseServiceMongoImpl[models.Product]
}

// NewPublisherService tạo mới PublisherService
func NewPublisherService() (*PublisherService, error) {
	publisherCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Publishers)
	if !exist {
		return nil, fmt.Errorf("failed to get publishers collection: %v", common.ErrNotFound)
	}
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &PublisherService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Publisher](publisherCol),
		productService:       basesvc.NewBaseServiceMongo[models.Product](productCol),
	}, nil
}

// DeleteById xóa nhà xuất bản, chặn khi vẫn còn sản phẩm tham chiếu
func (s *PublisherService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.productService.CountDocuments(ctx, bson.M{"publisherId": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Không thể xóa nhà xuất bản vì còn %d sản phẩm tham chiếu", count),
			common.StatusBadRequest,
			nil,
		)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// DiscountService là cấu trúc chứa các phương thức liên quan đến đợt giảm giá
type DiscountService struct {
	*basesvc.BaseServiceMongoImpl[models.DiscountCategory]
}

// NewDiscountService tạo mới DiscountService
func NewDiscountService() (*DiscountService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Discounts)
	if !exist {
		return nil, fmt.Errorf("failed to get discount_categories collection: %v", common.ErrNotFound)
	}
	return &DiscountService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DiscountCategory](col),
	}, nil
}
