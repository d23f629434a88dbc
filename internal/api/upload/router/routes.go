// Package router đăng ký route upload file.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dahlialee/Skybooks-sub000/internal/api/middleware"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
	uploadhdl "github.com/dahlialee/Skybooks-sub000/internal/api/upload/handler"
)

// Register đăng ký route upload lên v1, yêu cầu nhân viên đăng nhập
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	uploadHandler := uploadhdl.NewUploadHandler()

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/image", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUploadImage)

	return nil
}
