// Package newshdl - handler bài viết tin tức.
package newshdl

import (
	"fmt"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	newsdto "github.com/dahlialee/Skybooks-sub000/internal/api/news/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/news/models"
	newssvc "github.com/dahlialee/Skybooks-sub000/internal/api/news/service"

	"github.com/gofiber/fiber/v3"
)

// NewsHandler xử lý các route bài viết
type NewsHandler struct {
	*basehdl.BaseHandler[models.News, newsdto.NewsCreateInput, newsdto.NewsUpdateInput]
	newsService *newssvc.NewsService
}

// NewNewsHandler tạo mới NewsHandler
func NewNewsHandler() (*NewsHandler, error) {
	newsService, err := newssvc.NewNewsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create news service: %w", err)
	}
	return &NewsHandler{
		BaseHandler: basehdl.NewBaseHandler[models.News, newsdto.NewsCreateInput, newsdto.NewsUpdateInput](newsService),
		newsService: newsService,
	}, nil
}

// InsertOne tạo bài viết, sinh slug từ tiêu đề khi client không gửi
func (h *NewsHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsdto.NewsCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.newsService.CreateNews(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindPublished liệt kê bài "đã đăng" cho trang bán hàng, có phân trang
func (h *NewsHandler) HandleFindPublished(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		opts, err := h.ProcessFindOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)

		data, err := h.newsService.FindWithPagination(c.Context(), newssvc.PublishedFilter(filter), page, limit, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindBySlug trả về bài "đã đăng" theo slug, mỗi lần đọc tăng lượt xem
func (h *NewsHandler) HandleFindBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		data, err := h.newsService.FindPublishedBySlug(c.Context(), slug)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindPublishedById trả về bài "đã đăng" theo id, mỗi lần đọc tăng lượt xem
func (h *NewsHandler) HandleFindPublishedById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.newsService.FindPublishedById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAddComment thêm bình luận của khách hàng vào bài viết
func (h *NewsHandler) HandleAddComment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input newsdto.NewsCommentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.newsService.AddComment(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
