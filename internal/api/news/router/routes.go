// Package router đăng ký các route thuộc domain news (tin tức).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	newshdl "github.com/dahlialee/Skybooks-sub000/internal/api/news/handler"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route tin tức lên v1.
// Trang bán hàng chỉ đọc được bài "đã đăng", quản trị bài viết yêu cầu nhân viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	newsHandler, err := newshdl.NewNewsHandler()
	if err != nil {
		return fmt.Errorf("failed to create news handler: %w", err)
	}

	// Route public cho trang bán hàng
	v1.Get("/news/published", newsHandler.HandleFindPublished)
	v1.Get("/news/published/slug/:slug", newsHandler.HandleFindBySlug)
	v1.Get("/news/published/:id", newsHandler.HandleFindPublishedById)
	v1.Post("/news/comment/:id", newsHandler.HandleAddComment)

	// CRUD cho trang quản trị
	r.RegisterCRUDRoutes(v1, "/news", newsHandler, apirouter.ReadWriteConfig, "News")

	return nil
}
