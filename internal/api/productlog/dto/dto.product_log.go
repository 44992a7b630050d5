// Package productlogdto chứa các DTO cho domain productlog.
package productlogdto

// ProductLogCreateInput đầu vào tạo mới nhật ký sản phẩm.
// Product (nếu gửi) phải là ID của một sản phẩm đã tồn tại.
type ProductLogCreateInput struct {
	Product     string  `json:"product,omitempty" validate:"omitempty,exists=products"`
	ProductName string  `json:"productName" validate:"required,no_xss"`
	IMEI        string  `json:"imei,omitempty" validate:"omitempty,no_xss"`
	Action      string  `json:"action,omitempty" validate:"omitempty,oneof=import export sale adjust"`
	Quantity    int64   `json:"quantity" validate:"required"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Note        string  `json:"note,omitempty" validate:"omitempty,no_xss"`
}

// ProductLogUpdateInput đầu vào cập nhật nhật ký sản phẩm.
type ProductLogUpdateInput struct {
	ProductName string  `json:"productName"`
	IMEI        string  `json:"imei"`
	Action      string  `json:"action" validate:"omitempty,oneof=import export sale adjust"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
	Note        string  `json:"note"`
}
