package global

import (
	"github.com/dahlialee/Skybooks-sub000/config"
	"github.com/dahlialee/Skybooks-sub000/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Employees        string // Tên collection cho nhân viên
	Customers        string // Tên collection cho khách hàng
	Products         string // Tên collection cho sản phẩm (sách)
	Categories       string // Tên collection cho danh mục sản phẩm
	Publishers       string // Tên collection cho nhà xuất bản
	Discounts        string // Tên collection cho chương trình giảm giá
	Carts            string // Tên collection cho giỏ hàng
	Invoices         string // Tên collection cho hóa đơn bán hàng
	PurchaseReceipts string // Tên collection cho phiếu nhập kho
	News             string // Tên collection cho tin tức
}

// Các biến toàn cục
var Validate *validator.Validate               // Validator dùng chung cho DTO
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Employees:        "employees",
	Customers:        "customers",
	Products:         "products",
	Categories:       "category_products",
	Publishers:       "publishers",
	Discounts:        "discount_categories",
	Carts:            "carts",
	Invoices:         "invoices",
	PurchaseReceipts: "purchase_receipts",
	News:             "news",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
