package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK      = 200 // Thành công
	StatusCreated = 201 // Tạo mới thành công

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
// Message trả về client dùng tiếng Anh (frontend đa ngôn ngữ tự dịch).
const (
	MsgSuccess = "Success"

	MsgBadRequest      = "Bad request"
	MsgNotFound        = "Data not found"
	MsgConflict        = "Data already exists"
	MsgReadOnly        = "Record is read-only and cannot be modified"
	MsgInternalError   = "Internal server error"
	MsgValidationError = "Invalid input data"
	MsgInvalidFormat   = "Invalid data format"
	MsgTooManyRequests = "Too many requests, please try again later"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	SubCategory string // Phân loại con (ví dụ: Input)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	ErrCodeDatabaseConflict = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Conflict",
		Description: "Vi phạm ràng buộc unique khi ghi dữ liệu",
	}

	ErrCodeDatabaseProjection = ErrorCode{
		Code:        "DB_004",
		Category:    "Database",
		SubCategory: "Projection",
		Description: "Projection không hợp lệ với pipeline",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	ErrCodeBusinessReadOnly = ErrorCode{
		Code:        "BIZ_003",
		Category:    "Business",
		SubCategory: "ReadOnly",
		Description: "Bản ghi được bảo vệ, không được sửa hoặc xóa",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is so sánh theo mã lỗi và message để errors.Is hoạt động với các sentinel bên dưới
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors theo phân loại: validation, not-found, read-only, conflict,
// projection-mismatch, internal.
var (
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrConflict   = NewError(ErrCodeDatabaseConflict, MsgConflict, StatusConflict, nil)
	ErrReadOnly   = NewError(ErrCodeBusinessReadOnly, MsgReadOnly, StatusForbidden, nil)
	ErrProjection = NewError(ErrCodeDatabaseProjection, "Projection is not compatible with the query", StatusBadRequest, nil)

	ErrConnection = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrInternal   = NewError(ErrCodeInternalServer, MsgInternalError, StatusInternalServerError, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB driver sang lỗi hệ thống.
// Giữ nguyên lỗi đã phân loại (ErrNotFound, ErrReadOnly, ...) nếu đã convert trước đó.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Lỗi đã phân loại thì giữ nguyên, không convert lần nữa
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Database request timed out", StatusServiceUnavailable, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// 31253/31254: include/exclude trộn lẫn trong projection, 16410: FieldPath sai.
		// Đây là lỗi do client gửi projection sai, trả 400 thay vì 500.
		switch cmdErr.Code {
		case 16410, 31253, 31254:
			return NewError(ErrCodeDatabaseProjection, cmdErr.Message, StatusBadRequest, err)
		}
		return NewError(ErrCodeDatabaseQuery, "Database query error", StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, "Database error", StatusInternalServerError, err)
}
