package main

import (
	"context"
	"time"

	cartmodels "github.com/dahlialee/Skybooks-sub000/internal/api/cart/models"
	catalogmodels "github.com/dahlialee/Skybooks-sub000/internal/api/catalog/models"
	customermodels "github.com/dahlialee/Skybooks-sub000/internal/api/customer/models"
	employeemodels "github.com/dahlialee/Skybooks-sub000/internal/api/employee/models"
	newsmodels "github.com/dahlialee/Skybooks-sub000/internal/api/news/models"
	purchasingmodels "github.com/dahlialee/Skybooks-sub000/internal/api/purchasing/models"
	salesmodels "github.com/dahlialee/Skybooks-sub000/internal/api/sales/models"
	"github.com/dahlialee/Skybooks-sub000/internal/database"
	"github.com/dahlialee/Skybooks-sub000/internal/global"

	"github.com/sirupsen/logrus"
)

// InitRegistry đăng ký các collection vào registry toàn cục
// và tạo index theo tag `index` trên từng model
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	if err := global.RegistryDatabase.Register(global.ServerConfig.MongoDB_DBName, db); err != nil {
		logrus.Fatalf("Không đăng ký được database %s: %v", global.ServerConfig.MongoDB_DBName, err)
	}

	// Model gắn với từng collection để tạo index
	indexedModels := map[string]interface{}{
		global.MongoDB_ColNames.Employees:        employeemodels.Employee{},
		global.MongoDB_ColNames.Customers:        customermodels.Customer{},
		global.MongoDB_ColNames.Products:         catalogmodels.Product{},
		global.MongoDB_ColNames.Categories:       catalogmodels.CategoryProduct{},
		global.MongoDB_ColNames.Publishers:       catalogmodels.Publisher{},
		global.MongoDB_ColNames.Discounts:        catalogmodels.DiscountCategory{},
		global.MongoDB_ColNames.Carts:            cartmodels.Cart{},
		global.MongoDB_ColNames.Invoices:         salesmodels.Invoice{},
		global.MongoDB_ColNames.PurchaseReceipts: purchasingmodels.PurchaseReceipt{},
		global.MongoDB_ColNames.News:             newsmodels.News{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for name, model := range indexedModels {
		collection := db.Collection(name)

		if err := global.RegistryCollections.Register(name, collection); err != nil {
			logrus.Fatalf("Không đăng ký được collection %s: %v", name, err)
		}

		if err := database.CreateIndexes(ctx, collection, model); err != nil {
			logrus.Fatalf("Không tạo được index cho collection %s: %v", name, err)
		}
	}

	logrus.Info("Đã đăng ký collections và tạo index")
}
