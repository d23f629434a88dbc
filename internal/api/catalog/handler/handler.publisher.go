package cataloghdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	catalogdto "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// PublisherHandler xử lý các route nhà xuất bản
type PublisherHandler struct {
	*basehdl.BaseHandler[models.Publisher, catalogdto.PublisherCreateInput, catalogdto.PublisherUpdateInput]
	publisherService *catalogsvc.PublisherService
}

// NewPublisherHandler tạo mới PublisherHandler
func NewPublisherHandler() (*PublisherHandler, error) {
	publisherService, err := catalogsvc.NewPublisherService()
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher service: %w", err)
	}
	return &PublisherHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.Publisher, catalogdto.PublisherCreateInput, catalogdto.PublisherUpdateInput](publisherService),
		publisherService: publisherService,
	}, nil
}

// DeleteById ghi đè CRUD mặc định để chặn xóa nhà xuất bản còn sản phẩm tham chiếu
func (h *PublisherHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.publisherService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// DiscountHandler xử lý các route đợt giảm giá
type DiscountHandler struct {
	*basehdl.BaseHandler[models.DiscountCategory, catalogdto.DiscountCreateInput, catalogdto.DiscountUpdateInput]
}

// NewDiscountHandler tạo mới DiscountHandler
func NewDiscountHandler() (*DiscountHandler, error) {
	discountService, err := catalogsvc.NewDiscountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create discount service: %w", err)
	}
	return &DiscountHandler{
		BaseHandler: basehdl.NewBaseHandler[models.DiscountCategory, catalogdto.DiscountCreateInput, catalogdto.DiscountUpdateInput](discountService),
	}, nil
}
