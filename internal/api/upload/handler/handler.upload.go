// Package uploadhdl - handler upload ảnh sản phẩm và bài viết.
package uploadhdl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	basehdl "github.com/dahlialee/Skybooks-sub000/internal/api/base/handler"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Các định dạng ảnh được phép upload
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler xử lý route upload file
type UploadHandler struct{}

// NewUploadHandler tạo mới UploadHandler
func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// HandleUploadImage nhận file ảnh multipart (field "file"), lưu với tên uuid
// trong thư mục upload và trả về đường dẫn truy cập qua /static
func (h *UploadHandler) HandleUploadImage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file upload trong field 'file'",
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if fileHeader.Size > global.ServerConfig.UploadMaxSize {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("File vượt quá kích thước tối đa %d byte", global.ServerConfig.UploadMaxSize),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExts[ext] {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Chỉ chấp nhận ảnh jpg, jpeg, png, webp",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		uploadDir := global.ServerConfig.UploadDir
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Không tạo được thư mục upload",
				common.StatusInternalServerError,
				err.Error(),
			))
			return nil
		}

		fileName := uuid.New().String() + ext
		if err := c.SaveFile(fileHeader, filepath.Join(uploadDir, fileName)); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Lưu file thất bại",
				common.StatusInternalServerError,
				err.Error(),
			))
			return nil
		}

		logger.LogAction("upload_image", c, map[string]interface{}{
			"fileName": fileName,
			"size":     fileHeader.Size,
		})
		basehdl.WriteResponse(c, fiber.Map{
			"fileName": fileName,
			"url":      "/static/" + fileName,
		}, nil)
		return nil
	})
}
