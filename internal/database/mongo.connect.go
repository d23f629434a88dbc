package database

import (
	"context"
	"fmt"
	"time"

	"github.com/dahlialee/Skybooks-sub000/config"
	"github.com/dahlialee/Skybooks-sub000/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInstance khởi tạo và trả về *mongo.Client từ URI trong cấu hình.
// Trả về lỗi nếu không kết nối hoặc không ping được server.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("URI kết nối MongoDB đang rỗng")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                 // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("không thể ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Kết nối MongoDB thành công")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB client
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Không thể ngắt kết nối MongoDB")
		return err
	}
	logger.GetAppLogger().Info("Đã ngắt kết nối MongoDB")
	return nil
}
