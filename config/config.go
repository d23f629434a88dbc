package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mặc định
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật ký JWT
	JwtExpireHours        int    `env:"JWT_EXPIRE_HOURS" envDefault:"72"`          // Thời gian sống của token (giờ)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Upload Configuration
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`   // Thư mục lưu file upload
	UploadMaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"` // Kích thước file tối đa (byte)

	// VNPay Configuration (sandbox mặc định)
	VNPay_TmnCode    string `env:"VNPAY_TMN_CODE"`                                                             // Mã website tại VNPay
	VNPay_HashSecret string `env:"VNPAY_HASH_SECRET"`                                                          // Chuỗi bí mật ký HMAC-SHA512
	VNPay_Url        string `env:"VNPAY_URL" envDefault:"https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"` // URL cổng thanh toán
	VNPay_ReturnUrl  string `env:"VNPAY_RETURN_URL" envDefault:"http://localhost:3000/payment/vnpay-return"`  // URL nhận kết quả trả về

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// Tài khoản quản lý mặc định, chỉ seed khi INITMODE=true và chưa có nhân viên nào
	InitialAdmin_Email    string `env:"INITIAL_ADMIN_EMAIL" envDefault:"admin@skybooks.vn"` // Email tài khoản quản lý đầu tiên
	InitialAdmin_Password string `env:"INITIAL_ADMIN_PASSWORD"`                             // Mật khẩu tài khoản quản lý đầu tiên

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từ thư mục hiện tại cho tới khi tìm thấy config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV rồi parse vào struct
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
