package main

import (
	"context"
	"time"

	empdto "github.com/dahlialee/Skybooks-sub000/internal/api/employee/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/employee/models"
	empsvc "github.com/dahlialee/Skybooks-sub000/internal/api/employee/service"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed tài khoản quản lý đầu tiên khi hệ thống chưa có nhân viên.
// Chỉ chạy khi INITMODE=true và INITIAL_ADMIN_PASSWORD được cấu hình.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		return
	}
	if global.ServerConfig.InitialAdmin_Password == "" {
		log.Warn("INITMODE bật nhưng INITIAL_ADMIN_PASSWORD trống, bỏ qua seed tài khoản quản lý")
		return
	}

	employeeService, err := empsvc.NewEmployeeService()
	if err != nil {
		log.Fatalf("Không khởi tạo được employee service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := employeeService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Không đếm được nhân viên: %v", err)
	}
	if count > 0 {
		log.Info("Đã có nhân viên trong hệ thống, bỏ qua seed tài khoản quản lý")
		return
	}

	admin, err := employeeService.CreateEmployee(ctx, &empdto.EmployeeCreateInput{
		FullName: "Quản trị hệ thống",
		Email:    global.ServerConfig.InitialAdmin_Email,
		Password: global.ServerConfig.InitialAdmin_Password,
		Role:     models.RoleManager,
	})
	if err != nil {
		log.Fatalf("Không tạo được tài khoản quản lý đầu tiên: %v", err)
	}
	log.Infof("Đã tạo tài khoản quản lý đầu tiên: %s (%s)", admin.Email, admin.ID.Hex())
}
