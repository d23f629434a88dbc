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

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sách
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.CategoryProduct]
	productService *basesvc.BaseServiceMongoImpl[models.Product]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get category_products collection: %v", common.ErrNotFound)
	}
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CategoryProduct](categoryCol),
		productService:       basesvc.NewBaseServiceMongo[models.Product](productCol),
	}, nil
}

// DeleteById xóa danh mục, chặn khi vẫn còn sản phẩm thuộc danh mục
func (s *CategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.productService.CountDocuments(ctx, bson.M{"categoryId": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Không thể xóa danh mục vì còn %d sản phẩm thuộc danh mục này", count),
			common.StatusBadRequest,
			nil,
		)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
