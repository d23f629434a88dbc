package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"

	apirouter "github.com/dahlialee/Skybooks-sub000/internal/api/router"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	cartroutes "github.com/dahlialee/Skybooks-sub000/internal/api/cart/router"
	catalogroutes "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/router"
	customerroutes "github.com/dahlialee/Skybooks-sub000/internal/api/customer/router"
	employeeroutes "github.com/dahlialee/Skybooks-sub000/internal/api/employee/router"
	newsroutes "github.com/dahlialee/Skybooks-sub000/internal/api/news/router"
	paymentroutes "github.com/dahlialee/Skybooks-sub000/internal/api/payment/router"
	purchasingroutes "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/router"
	reportroutes "github.com/dahlialee/Skybooks-sub000/internal/api/report/router"
	salesroutes "github.com/dahlialee/Skybooks-sub000/internal/api/sales/router"
	uploadroutes "github.com/dahlialee/Skybooks-sub000/internal/api/upload/router"
)

// InitFiberApp khởi tạo ứng dụng Fiber với middleware và toàn bộ routes
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Skybooks API",
		ServerHeader:  "Skybooks API",
		StrictRouting: true,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthRole.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"path":      c.Path(),
				"method":    c.Method(),
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID để trace log theo từng request
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))

	// CORS đặt trước các middleware khác để xử lý preflight
	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// Rate limit theo IP
	if global.ServerConfig.RateLimit_Enabled && global.ServerConfig.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        global.ServerConfig.RateLimit_Max,
			Expiration: time.Duration(global.ServerConfig.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/system/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limit: %d request mỗi %d giây", global.ServerConfig.RateLimit_Max, global.ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limit đang tắt")
	}

	// Recover panic ngoài tầm SafeHandlerWrapper
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic":  e,
				"path":   c.Path(),
				"method": c.Method(),
			}).Error("Panic recovered")
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/system/health"
		},
	}))

	// Phục vụ file đã upload
	app.Use("/static", static.New(global.ServerConfig.UploadDir))

	if err := apirouter.SetupRoutes(app,
		employeeroutes.Register,
		catalogroutes.Register,
		customerroutes.Register,
		cartroutes.Register,
		salesroutes.Register,
		purchasingroutes.Register,
		newsroutes.Register,
		paymentroutes.Register,
		reportroutes.Register,
		uploadroutes.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Không đăng ký được routes: %v", err)
	}

	logger.GetAppLogger().Info("Fiber app đã sẵn sàng")
	return app
}
