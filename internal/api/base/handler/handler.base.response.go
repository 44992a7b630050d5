package basehdl

import (
	"errors"
	"fmt"
	"phone_commerce/internal/common"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// WriteError ghi response lỗi theo envelope thống nhất {success: false, code, message, details}
func WriteError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"success": false,
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
		})
	}
	// Không phải custom error, trả về internal server error
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"success": false,
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
	})
}

// WriteSuccess ghi response thành công {success: true, message: "Success", data}
func WriteSuccess(c fiber.Ctx, data interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": common.MsgSuccess,
		"data":    data,
	})
}

// WriteListSuccess ghi response danh sách, có thêm count (tổng số bản ghi khớp filter)
func WriteListSuccess(c fiber.Ctx, data interface{}, count int64) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": common.MsgSuccess,
		"data":    data,
		"count":   count,
	})
}

// WriteCalculation ghi response tổng hợp dashboard {success, message, calculation}
func WriteCalculation(c fiber.Ctx, calculation interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success":     true,
		"message":     common.MsgSuccess,
		"calculation": calculation,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			// Trả về lỗi cho client
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Unexpected error: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		WriteError(c, err)
		return
	}
	WriteSuccess(c, data)
}

// HandleListResponse như HandleResponse nhưng kèm count cho response danh sách
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleListResponse(c fiber.Ctx, data interface{}, count int64, err error) {
	if err != nil {
		WriteError(c, err)
		return
	}
	WriteListSuccess(c, data, count)
}
