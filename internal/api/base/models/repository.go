// Package models chứa các kiểu dùng chung cho layer repository/base (truy vấn danh sách, kết quả phân trang, đếm).
package models

// Pagination mô tả yêu cầu phân trang từ client.
// CurrentPage bắt đầu từ 0: skip = PageSize * CurrentPage.
type Pagination struct {
	PageSize    int64 `json:"pageSize" bson:"pageSize"`       // Số bản ghi trên mỗi trang
	CurrentPage int64 `json:"currentPage" bson:"currentPage"` // Trang hiện tại (0-based)
}

// ListQuery mô tả truy vấn danh sách gửi trong body của get-all.
// Tất cả các field đều optional.
type ListQuery struct {
	Filter      map[string]interface{} `json:"filter,omitempty"`      // Điều kiện lọc, key dạng ID sẽ được chuẩn hóa sang ObjectID
	Sort        map[string]int         `json:"sort,omitempty"`        // Sắp xếp: field -> 1 (tăng) / -1 (giảm)
	Pagination  *Pagination            `json:"pagination,omitempty"`  // Phân trang, nil = trả về tất cả
	Select      map[string]int         `json:"select,omitempty"`      // Projection: field -> 1/0, nil = projection mặc định của resource
	SearchQuery string                 `json:"searchQuery,omitempty"` // Chuỗi tìm kiếm substring không phân biệt hoa thường
}

// PageResult đại diện cho kết quả truy vấn danh sách.
// Count là tổng số bản ghi khớp filter TRƯỚC khi phân trang;
// khi không phân trang thì Count bằng len(Data).
type PageResult[T any] struct {
	Data  []T   `json:"data" bson:"data"`
	Count int64 `json:"count" bson:"count"`
}

// PaginateResult đại diện cho kết quả phân trang kiểu page/limit (dùng nội bộ)
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult đại diện cho kết quả đếm
type CountResult struct {
	// Tổng số lượng mục
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
}
