package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "github.com/dahlialee/Skybooks-sub000/internal/api/employee/models"
	empsvc "github.com/dahlialee/Skybooks-sub000/internal/api/employee/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền nhân viên
type AuthManager struct {
	EmployeeCRUD *empsvc.EmployeeService
	Cache        *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager
func newAuthManager() (*AuthManager, error) {
	employeeService, err := empsvc.NewEmployeeService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{
		EmployeeCRUD: employeeService,
		Cache:        utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// rolePermissions ánh xạ vai trò sang danh sách permission prefix được phép.
// Vai trò "quản lý" có mọi quyền nên không cần liệt kê.
var rolePermissions = map[string][]string{
	models.RoleSalesStaff: {
		"Product.Read", "Category.Read", "Publisher.Read", "Discount.Read",
		"Customer.Insert", "Customer.Read", "Customer.Update",
		"Invoice.Insert", "Invoice.Read", "Invoice.Update",
		"Cart.Read", "Cart.Update",
		"News.Insert", "News.Read", "News.Update",
		"Report.Read",
	},
	models.RoleStockStaff: {
		"Product.Insert", "Product.Read", "Product.Update",
		"Category.Read", "Publisher.Read", "Discount.Read",
		"PurchaseReceipt.Insert", "PurchaseReceipt.Read",
		"PurchaseReceipt.Update", "PurchaseReceipt.Delete",
		"Report.Read",
	},
}

// hasPermission kiểm tra vai trò có permission yêu cầu không
func hasPermission(role string, permission string) bool {
	if role == models.RoleManager {
		return true
	}
	return utility.Contains(rolePermissions[role], permission)
}

// findEmployeeByToken tìm nhân viên theo token, có cache để giảm truy vấn
func (am *AuthManager) findEmployeeByToken(ctx context.Context, token string) (models.Employee, error) {
	cacheKey := "employee_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.Employee), nil
	}

	employee, err := am.EmployeeCRUD.FindByToken(ctx, token)
	if err != nil {
		return employee, err
	}

	am.Cache.Set(cacheKey, employee)
	return employee, nil
}

// InvalidateToken xóa cache của một token (gọi khi logout/block)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("employee_token:" + token)
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập, không cần permission cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Kiểm tra chữ ký và hạn của JWT trước khi chạm database
		claims, err := utility.ParseToken(global.ServerConfig.JwtSecret, token)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenExpired)
			return nil
		}

		// Token phải trùng với token đang lưu trên document nhân viên,
		// để logout và đổi mật khẩu vô hiệu hóa được phiên cũ
		employee, err := authManager.findEmployeeByToken(c.Context(), token)
		if err != nil || employee.ID.Hex() != claims.EmployeeID {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("Token không còn hiệu lực")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if employee.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+employee.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("employee_id", employee.ID.Hex())
		c.Locals("employee_role", employee.Role)
		c.Locals("employee", employee)

		if requirePermission == "" {
			return c.Next()
		}

		if !hasPermission(employee.Role, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"employee_id":         employee.ID.Hex(),
				"role":                employee.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("Nhân viên không có quyền truy cập")
			HandleErrorResponse(c, common.ErrNoPermission)
			return nil
		}

		return c.Next()
	}
}
