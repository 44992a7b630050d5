package dashboardsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var dashboardNow = time.Date(2024, time.March, 15, 14, 30, 45, 0, time.Local)

func TestDateWindow_Today(t *testing.T) {
	start, end, hasEnd := DateWindow(0, dashboardNow)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local), end)
	assert.True(t, hasEnd)
}

func TestDateWindow_Yesterday(t *testing.T) {
	start, end, hasEnd := DateWindow(1, dashboardNow)

	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), end)
	assert.True(t, hasEnd)
}

func TestDateWindow_LastNDays(t *testing.T) {
	start, _, hasEnd := DateWindow(7, dashboardNow)

	assert.Equal(t, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.Local), start)
	assert.False(t, hasEnd)
}

func TestDateWindow_Negative(t *testing.T) {
	start, _, hasEnd := DateWindow(-1, dashboardNow)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), start)
	assert.False(t, hasEnd)
}

func TestDateFilter(t *testing.T) {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	cond := dateFilter(start, end, true)
	assert.Equal(t, start.UnixMilli(), cond["$gte"])
	assert.Equal(t, end.UnixMilli(), cond["$lt"])

	// Cửa sổ mở về phía trên không có cận trên
	cond = dateFilter(start, time.Time{}, false)
	assert.Equal(t, start.UnixMilli(), cond["$gte"])
	_, hasUpper := cond["$lt"]
	assert.False(t, hasUpper)
}

func TestStatementMonthBounds(t *testing.T) {
	// Tháng 2 năm nhuận có 29 ngày
	monthStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	nextMonth := monthStart.AddDate(0, 1, 0)
	assert.Equal(t, 29, nextMonth.AddDate(0, 0, -1).Day())

	monthStart = time.Date(2023, time.February, 1, 0, 0, 0, 0, time.Local)
	nextMonth = monthStart.AddDate(0, 1, 0)
	assert.Equal(t, 28, nextMonth.AddDate(0, 0, -1).Day())
}
