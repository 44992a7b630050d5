// Package problemdto chứa các DTO cho domain problem.
package problemdto

// ProblemCreateInput đầu vào tạo mới danh mục lỗi máy.
type ProblemCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Describe string `json:"describe,omitempty" validate:"omitempty,no_xss"`
}

// ProblemUpdateInput đầu vào cập nhật danh mục lỗi máy.
type ProblemUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
}
