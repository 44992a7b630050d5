// Package shopdto chứa các DTO cho domain shop.
package shopdto

// ShopCreateInput đầu vào tạo mới cửa hàng.
// Slug chỉ gồm chữ thường, số và dấu gạch ngang.
type ShopCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Slug    string `json:"slug" validate:"required,lowercase,no_xss"`
	Address string `json:"address,omitempty" validate:"omitempty,no_xss"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,no_xss"`
}

// ShopUpdateInput đầu vào cập nhật cửa hàng.
type ShopUpdateInput struct {
	Name    string `json:"name"`
	Slug    string `json:"slug" validate:"omitempty,lowercase"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}
