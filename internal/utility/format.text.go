package utility

import (
	"strings"
	"time"
)

// NormalizeSpace chuẩn hóa khoảng trắng: trim hai đầu và gộp các chuỗi
// khoảng trắng liên tiếp thành một space. Dùng khi ghi category của sản phẩm
// để dashboard match được chính xác các nhãn chuẩn ("NEW PHONE", "2HAND", ...).
// Dữ liệu cũ ghi trước khi có chuẩn hóa vẫn có thể lệch, xem DESIGN.md.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DateParts tính các field dẫn xuất từ ngày chứng từ: chuỗi ngày dạng
// dd-mm-yyyy, tháng và năm. Service stamp các giá trị này trước khi insert
// cho các resource có ngày (transactions, payout, repair).
func DateParts(t time.Time) (dateString string, month int, year int) {
	return t.Format("02-01-2006"), int(t.Month()), t.Year()
}
