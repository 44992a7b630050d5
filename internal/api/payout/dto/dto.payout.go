// Package payoutdto chứa các DTO cho domain payout.
package payoutdto

// PayoutCreateInput đầu vào tạo mới phiếu chi.
// Date là Unix milli, bỏ trống sẽ lấy thời điểm tạo phiếu.
type PayoutCreateInput struct {
	Code     string  `json:"code" validate:"required,no_xss"`
	Reason   string  `json:"reason" validate:"required,no_xss"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Receiver string  `json:"receiver,omitempty" validate:"omitempty,no_xss"`
	Date     int64   `json:"date,omitempty" validate:"omitempty,gt=0"`
}

// PayoutUpdateInput đầu vào cập nhật phiếu chi.
// Không cho sửa Date qua update để các field dẫn xuất không lệch.
type PayoutUpdateInput struct {
	Code     string  `json:"code"`
	Reason   string  `json:"reason"`
	Amount   float64 `json:"amount" validate:"omitempty,gt=0"`
	Receiver string  `json:"receiver"`
}
