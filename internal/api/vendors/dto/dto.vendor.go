// Package vendordto chứa các DTO cho domain vendor.
package vendordto

// VendorCreateInput đầu vào tạo mới nhà cung cấp.
type VendorCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Code    string `json:"code" validate:"required,no_xss"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,no_xss"`
	Address string `json:"address,omitempty" validate:"omitempty,no_xss"`
	Note    string `json:"note,omitempty" validate:"omitempty,no_xss"`
}

// VendorUpdateInput đầu vào cập nhật nhà cung cấp.
type VendorUpdateInput struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}
