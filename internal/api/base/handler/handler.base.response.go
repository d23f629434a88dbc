package basehdl

import (
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON với charset utf-8 để tiếng Việt hiển thị đúng
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover, tránh panic làm chết tiến trình
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	return SafeHandlerWrapper(c, handler)
}

// SafeHandlerWrapper là phiên bản hàm rời của SafeHandler, dùng cho các handler
// nghiệp vụ không embed BaseHandler.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("panic", r).WithField("path", c.Path()).Error("Panic trong handler")
			WriteResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleResponse chuẩn hóa response cho mọi endpoint
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	WriteResponse(c, data, err)
}

// WriteResponse ghi response theo định dạng chuẩn.
// Thành công: {code, message, data, status: "success"}.
// Lỗi: {code, message, details, status: "error"} với HTTP status lấy từ *common.Error.
func WriteResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		if customErr, ok := err.(*common.Error); ok {
			_ = JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
