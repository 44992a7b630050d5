package main

import (
	"context"

	"phone_commerce/config"
	notesmodels "phone_commerce/internal/api/notes/models"
	payoutmodels "phone_commerce/internal/api/payout/models"
	problemmodels "phone_commerce/internal/api/problem/models"
	productmodels "phone_commerce/internal/api/product/models"
	productlogmodels "phone_commerce/internal/api/productlog/models"
	repairmodels "phone_commerce/internal/api/repair/models"
	shopmodels "phone_commerce/internal/api/shop/models"
	sizemodels "phone_commerce/internal/api/size/models"
	transactionsmodels "phone_commerce/internal/api/transactions/models"
	vendormodels "phone_commerce/internal/api/vendors/models"
	"phone_commerce/internal/database"
	"phone_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Sizes = "sizes"
	global.MongoDB_ColNames.Notes = "notes"
	global.MongoDB_ColNames.Repairs = "repairs"
	global.MongoDB_ColNames.Payouts = "payouts"
	global.MongoDB_ColNames.Problems = "problems"
	global.MongoDB_ColNames.ProductLogs = "product_logs"
	global.MongoDB_ColNames.ProductLogArchive = "product_log_archive"
	global.MongoDB_ColNames.Vendors = "vendors"
	global.MongoDB_ColNames.VendorTransactions = "vendor_transactions"
	global.MongoDB_ColNames.Shops = "shops"
	global.MongoDB_ColNames.Products = "products"

	// Các collection do hệ thống POS ghi, backend chỉ đọc cho dashboard
	global.MongoDB_ColNames.Sales = "sales"
	global.MongoDB_ColNames.Expenses = "expenses"
	global.MongoDB_ColNames.Incomes = "incomes"
	global.MongoDB_ColNames.Couriers = "couriers"
	global.MongoDB_ColNames.Purchases = "purchases"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator và các custom validator (no_xss, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database, đảm bảo collection và index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Đồng bộ index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Sizes), sizemodels.Size{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Notes), notesmodels.Note{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Repairs), repairmodels.Repair{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Payouts), payoutmodels.Payout{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Problems), problemmodels.Problem{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.ProductLogs), productlogmodels.ProductLog{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Vendors), vendormodels.Vendor{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.VendorTransactions), transactionsmodels.VendorTransaction{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Shops), shopmodels.Shop{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Products), productmodels.Product{})
}
