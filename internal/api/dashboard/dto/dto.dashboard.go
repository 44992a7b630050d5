// Package dashboarddto chứa các DTO cho domain dashboard.
package dashboarddto

// StatementInput đầu vào cho báo cáo sao kê theo tháng.
type StatementInput struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000,max=2200"`
}
