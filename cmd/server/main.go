package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"
	"github.com/dahlialee/Skybooks-sub000/internal/worker"
)

// main_thread khởi tạo Fiber app và lắng nghe đến khi nhận tín hiệu dừng
func main_thread() {
	app := InitFiberApp()
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	// Worker hủy các hóa đơn VNPay chưa thanh toán quá hạn
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	expiryWorker, err := worker.NewInvoiceExpiryWorker(5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Không khởi tạo được invoice expiry worker: %v", err)
	}
	go expiryWorker.Start(workerCtx)

	// Shutdown mềm khi nhận SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Nhận tín hiệu dừng, shutdown server...")
		stopWorkers()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Shutdown không sạch: %v", err)
		}
	}()

	listenConfig := fiber.ListenConfig{
		EnablePrefork: false,
	}
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		listenConfig.CertFile = cfg.TLSCertFile
		listenConfig.CertKeyFile = cfg.TLSKeyFile
		log.Infof("Server chạy HTTPS tại %s", cfg.Address)
	} else {
		log.Infof("Server chạy HTTP tại %s", cfg.Address)
	}

	if err := app.Listen(cfg.Address, listenConfig); err != nil {
		log.Fatalf("Server dừng với lỗi: %v", err)
	}
}

func main() {
	InitGlobal()
	InitRegistry()
	InitDefaultData()

	defer func() {
		closeDatabase()
		logger.Close()
	}()

	main_thread()
}
