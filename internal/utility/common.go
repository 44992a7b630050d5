package utility

import (
	"time"

	"github.com/sirupsen/logrus"
)

// GoProtect chạy một hàm trong goroutine với recover để panic không làm sập app
func GoProtect(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("Recovered from panic: %v", r)
			}
		}()
		f()
	}()
}

// UnixMilli trả về thời gian theo milliseconds
func UnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// CurrentTimeInMilli trả về thời gian hiện tại theo milliseconds
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}
