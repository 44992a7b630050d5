// Package repairdto chứa các DTO cho domain repair.
package repairdto

// RepairCreateInput đầu vào tạo mới phiếu sửa chữa.
// Date là Unix milli, bỏ trống sẽ lấy thời điểm tạo phiếu.
type RepairCreateInput struct {
	CustomerName string  `json:"customerName" validate:"required,no_xss"`
	Phone        string  `json:"phone,omitempty" validate:"omitempty,no_xss"`
	IMEI         string  `json:"imei,omitempty" validate:"omitempty,no_xss"`
	ProductName  string  `json:"productName,omitempty" validate:"omitempty,no_xss"`
	Issue        string  `json:"issue,omitempty" validate:"omitempty,no_xss"`
	Cost         float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Status       string  `json:"status,omitempty" validate:"omitempty,oneof=received repairing done returned cancelled"`
	Date         int64   `json:"date,omitempty" validate:"omitempty,gt=0"`
}

// RepairUpdateInput đầu vào cập nhật phiếu sửa chữa.
// Không cho sửa Date qua update để các field dẫn xuất không lệch.
type RepairUpdateInput struct {
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	IMEI         string  `json:"imei"`
	ProductName  string  `json:"productName"`
	Issue        string  `json:"issue"`
	Cost         float64 `json:"cost" validate:"omitempty,gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=received repairing done returned cancelled"`
}
