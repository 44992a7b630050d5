package global

import (
	"phone_commerce/config"
	"phone_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Sizes              string // Tên collection cho kích thước / dung lượng máy
	Notes              string // Tên collection cho ghi chú nội bộ
	Repairs            string // Tên collection cho phiếu sửa chữa
	Payouts            string // Tên collection cho phiếu chi
	Problems           string // Tên collection cho danh mục lỗi máy
	ProductLogs        string // Tên collection cho nhật ký sản phẩm
	ProductLogArchive  string // Tên collection lưu trữ nhật ký sản phẩm đã xóa
	Vendors            string // Tên collection cho nhà cung cấp
	VendorTransactions string // Tên collection cho giao dịch với nhà cung cấp
	Shops              string // Tên collection cho cửa hàng
	Products           string // Tên collection cho sản phẩm tồn kho

	// Các collection do hệ thống POS ghi, backend chỉ đọc để tổng hợp dashboard
	Sales     string // Tên collection cho đơn bán hàng
	Expenses  string // Tên collection cho khoản chi
	Incomes   string // Tên collection cho khoản thu
	Couriers  string // Tên collection cho phí vận chuyển
	Purchases string // Tên collection cho đơn nhập hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
