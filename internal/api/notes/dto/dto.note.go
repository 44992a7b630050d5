// Package notesdto chứa các DTO cho domain notes.
package notesdto

// NoteCreateInput đầu vào tạo mới ghi chú.
type NoteCreateInput struct {
	Title   string `json:"title" validate:"required,no_xss"`
	Content string `json:"content" validate:"required,no_xss"`
	Pinned  bool   `json:"pinned,omitempty"`
}

// NoteUpdateInput đầu vào cập nhật ghi chú.
type NoteUpdateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}
