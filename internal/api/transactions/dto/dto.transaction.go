// Package transactionsdto chứa các DTO cho domain transactions.
package transactionsdto

// TransactionCreateInput đầu vào tạo mới giao dịch với nhà cung cấp.
// Vendor phải là ID của một vendor đã tồn tại.
// Date là Unix milli, bỏ trống sẽ lấy thời điểm tạo giao dịch.
type TransactionCreateInput struct {
	Vendor    string  `json:"vendor" validate:"required,exists=vendors"`
	Reference string  `json:"reference,omitempty" validate:"omitempty,no_xss"`
	Note      string  `json:"note,omitempty" validate:"omitempty,no_xss"`
	Type      string  `json:"type,omitempty" validate:"omitempty,oneof=payment debt"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Date      int64   `json:"date,omitempty" validate:"omitempty,gt=0"`
}

// TransactionUpdateInput đầu vào cập nhật giao dịch.
// Không cho đổi vendor và Date qua update.
type TransactionUpdateInput struct {
	Reference string  `json:"reference"`
	Note      string  `json:"note"`
	Type      string  `json:"type" validate:"omitempty,oneof=payment debt"`
	Amount    float64 `json:"amount" validate:"omitempty,gt=0"`
}
