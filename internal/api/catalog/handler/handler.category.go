package cataloghdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	catalogdto "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	catalogsvc "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các route danh mục sách
type CategoryHandler struct {
	*basehdl.BaseHandler[models.CategoryProduct, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.CategoryProduct, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService),
		categoryService: categoryService,
	}, nil
}

// DeleteById ghi đè CRUD mặc định để chặn xóa danh mục còn sản phẩm
func (h *CategoryHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.categoryService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
