// Package router đăng ký các route thuộc domain employee: Auth, Employee CRUD, System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	emphdl "github.com/dahlialee/Skybooks-sub000/internal/api/employee/handler"
	"github.com/dahlialee/Skybooks-sub000/internal/api/middleware"
	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
)

// Register đăng ký tất cả route employee (auth, CRUD, system) lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	return registerEmployeeRoutes(v1, r)
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerEmployeeRoutes(router fiber.Router, r *apirouter.Router) error {
	employeeHandler, err := emphdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("failed to create employee handler: %w", err)
	}

	// Đăng nhập không cần token
	router.Post("/auth/login", employeeHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleChangePassword)

	// Quản lý nhân viên (chỉ "quản lý" có các permission Employee.*)
	r.RegisterCRUDRoutes(router, "/employee", employeeHandler, apirouter.ReadWriteConfig, "Employee")

	blockMiddleware := middleware.AuthMiddleware("Employee.Block")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employee", "POST", "/block", []fiber.Handler{blockMiddleware}, employeeHandler.HandleBlock)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employee", "POST", "/unblock", []fiber.Handler{blockMiddleware}, employeeHandler.HandleUnBlock)

	return nil
}
