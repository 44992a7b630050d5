// Package sizedto chứa các DTO cho domain size.
package sizedto

// SizeCreateInput đầu vào tạo mới dung lượng máy.
type SizeCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Code     string `json:"code" validate:"required,no_xss"`
	Describe string `json:"describe,omitempty" validate:"omitempty,no_xss"`
}

// SizeUpdateInput đầu vào cập nhật dung lượng máy.
type SizeUpdateInput struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Describe string `json:"describe"`
}
