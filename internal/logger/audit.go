package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động audit (đăng nhập, tạo hóa đơn, nhập kho...)
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	fields := logrus.Fields{
		"action":     action,
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
		"details":    details,
		"timestamp":  time.Now(),
	}

	// employee_id được middleware auth đặt vào context sau khi xác thực
	if employeeID := c.Locals("employee_id"); employeeID != nil {
		if id, ok := employeeID.(string); ok {
			fields["employee_id"] = id
		}
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		fields["request_id"] = requestID
	}

	GetAuditLogger().WithFields(fields).Info("Audit log")
}

// LogCRUD ghi các thao tác CRUD lên một loại tài nguyên
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogAuth ghi các thao tác đăng nhập/đăng xuất
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	LogAction("auth_"+action, c, details)
}
