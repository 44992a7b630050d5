// Package productdto chứa các DTO cho domain product.
package productdto

// ProductCreateInput đầu vào tạo mới sản phẩm tồn kho.
type ProductCreateInput struct {
	Name          string  `json:"name" validate:"required,no_xss"`
	Code          string  `json:"code" validate:"required,no_xss"`
	IMEI          string  `json:"imei,omitempty" validate:"omitempty,no_xss"`
	Category      string  `json:"category" validate:"required,no_xss"`
	Quantity      int64   `json:"quantity" validate:"gte=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	SalePrice     float64 `json:"salePrice,omitempty" validate:"omitempty,gte=0"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm tồn kho.
type ProductUpdateInput struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	IMEI          string  `json:"imei"`
	Category      string  `json:"category"`
	Quantity      int64   `json:"quantity" validate:"omitempty,gte=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	SalePrice     float64 `json:"salePrice" validate:"omitempty,gte=0"`
}
