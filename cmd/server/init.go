package main

import (
	"github.com/dahlialee/Skybooks-sub000/config"
	"github.com/dahlialee/Skybooks-sub000/internal/database"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initConfig()           // Đọc cấu hình từ file env
	initLogger()           // Khởi tạo hệ thống log
	initValidator()        // Đăng ký các custom validator
	initDatabase_MongoDB() // Kết nối MongoDB và đảm bảo collections
}

// initConfig đọc cấu hình server từ file env theo GO_ENV
func initConfig() {
	cfg := config.NewConfig()
	if cfg == nil {
		logrus.Fatal("Không đọc được cấu hình server")
	}
	global.ServerConfig = cfg
}

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		logrus.Fatalf("Không khởi tạo được logger: %v", err)
	}
	logger.GetAppLogger().Info("Hệ thống log đã sẵn sàng")
}

// initValidator đăng ký các custom validator (no_xss, strong_password, object_id, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Đã khởi tạo validator")
}

// initDatabase_MongoDB kết nối MongoDB và đảm bảo database cùng các collection tồn tại
func initDatabase_MongoDB() {
	client, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Không kết nối được MongoDB: %v", err)
	}
	global.MongoDB_Session = client

	if err := database.EnsureDatabaseAndCollections(client); err != nil {
		logrus.Fatalf("Không khởi tạo được database và collections: %v", err)
	}
}

// closeDatabase ngắt kết nối MongoDB khi server dừng
func closeDatabase() {
	if global.MongoDB_Session == nil {
		return
	}
	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		logger.GetErrorLogger().WithError(err).Error("Ngắt kết nối MongoDB thất bại")
	}
}
