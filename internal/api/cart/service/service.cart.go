// Package cartsvc - service giỏ hàng (Cart).
package cartsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/cart/models"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// CartService là cấu trúc chứa các phương thức liên quan đến giỏ hàng
type CartService struct {
	*basesvc.BaseServiceMongoImpl[models.Cart]
	productService *catalogsvc.ProductService
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Carts)
	if !exist {
		return nil, fmt.Errorf("failed to get carts collection: %v", common.ErrNotFound)
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &CartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Cart](col),
		productService:       productService,
	}, nil
}

// GetOrCreate tìm giỏ hàng theo customerId, tạo giỏ rỗng nếu chưa có
func (s *CartService) GetOrCreate(ctx context.Context, customerID string) (models.Cart, error) {
	cart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return cart, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, models.Cart{
		CustomerID: customerID,
		Items:      []models.CartItem{},
	})
}

// AddItem thêm sản phẩm vào giỏ theo quy tắc gộp dòng.
// Giá dòng là giá bán hiện tại của sản phẩm (đã áp giảm giá).
func (s *CartService) AddItem(ctx context.Context, customerID string, productID string, quantity int64) (models.Cart, error) {
	var zero models.Cart

	pid := utility.String2ObjectID(productID)
	product, err := s.productService.FindOneById(ctx, pid)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeBusinessStock,
			"Sản phẩm không tồn tại",
			common.StatusBadRequest,
			nil,
		)
	}

	cart, err := s.GetOrCreate(ctx, customerID)
	if err != nil {
		return zero, err
	}

	// Tổng số lượng sau khi gộp không được vượt tồn kho
	var existing int64
	for _, item := range cart.Items {
		if item.ProductID == pid {
			existing = item.Quantity
			break
		}
	}
	if existing+quantity > product.StockQuantity {
		return zero, common.NewError(
			common.ErrCodeBusinessStock,
			fmt.Sprintf("Số lượng sản phẩm '%s' trong kho không đủ (còn %d)", product.Name, product.StockQuantity),
			common.StatusBadRequest,
			nil,
		)
	}

	items := models.MergeItem(cart.Items, models.CartItem{
		ProductID:  pid,
		Quantity:   quantity,
		PriceAtAdd: s.productService.EffectivePrice(ctx, &product),
	})

	return s.saveItems(ctx, &cart, items)
}

// UpdateItem đặt lại số lượng một dòng, số lượng <= 0 thì xóa dòng
func (s *CartService) UpdateItem(ctx context.Context, customerID string, productID string, quantity int64) (models.Cart, error) {
	var zero models.Cart

	cart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	if err != nil {
		return zero, err
	}

	pid := utility.String2ObjectID(productID)

	if quantity <= 0 {
		return s.removeLine(ctx, &cart, productID)
	}

	product, err := s.productService.FindOneById(ctx, pid)
	if err != nil {
		return zero, common.NewError(common.ErrCodeBusinessStock, "Sản phẩm không tồn tại", common.StatusBadRequest, nil)
	}
	if quantity > product.StockQuantity {
		return zero, common.NewError(
			common.ErrCodeBusinessStock,
			fmt.Sprintf("Số lượng sản phẩm '%s' trong kho không đủ (còn %d)", product.Name, product.StockQuantity),
			common.StatusBadRequest,
			nil,
		)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == pid {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Sản phẩm không có trong giỏ hàng", common.StatusNotFound, nil)
	}

	return s.saveItems(ctx, &cart, cart.Items)
}

// RemoveItem xóa một dòng khỏi giỏ
func (s *CartService) RemoveItem(ctx context.Context, customerID string, productID string) (models.Cart, error) {
	var zero models.Cart

	cart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	if err != nil {
		return zero, err
	}
	return s.removeLine(ctx, &cart, productID)
}

// Clear xóa toàn bộ dòng trong giỏ
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	cart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	_, err = s.saveItems(ctx, &cart, []models.CartItem{})
	return err
}

// Sync gộp giỏ khách vãng lai vào giỏ của khách hàng sau khi đăng nhập,
// sau đó làm rỗng giỏ khách vãng lai
func (s *CartService) Sync(ctx context.Context, customerID string) (models.Cart, error) {
	var zero models.Cart

	guestCart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"customerId": models.GuestCustomerID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không có giỏ guest, trả về giỏ của khách hàng
			return s.GetOrCreate(ctx, customerID)
		}
		return zero, err
	}

	customerCart, err := s.GetOrCreate(ctx, customerID)
	if err != nil {
		return zero, err
	}

	merged := models.MergeItems(customerCart.Items, guestCart.Items)
	customerCart, err = s.saveItems(ctx, &customerCart, merged)
	if err != nil {
		return zero, err
	}

	if _, err := s.saveItems(ctx, &guestCart, []models.CartItem{}); err != nil {
		return zero, err
	}

	return customerCart, nil
}

// removeLine xóa dòng có productID khỏi giỏ và lưu lại
func (s *CartService) removeLine(ctx context.Context, cart *models.Cart, productID string) (models.Cart, error) {
	pid := utility.String2ObjectID(productID)
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != pid {
			items = append(items, item)
		}
	}
	return s.saveItems(ctx, cart, items)
}

// saveItems ghi danh sách dòng mới của giỏ xuống database
func (s *CartService) saveItems(ctx context.Context, cart *models.Cart, items []models.CartItem) (models.Cart, error) {
	updateData := &basesvc.UpdateData{
		Set: bson.M{"items": items},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, cart.ID, updateData)
}
