// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"phone_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// shopIDLocalKey là key lưu shop ID (chuỗi hex) trong Locals của request
const shopIDLocalKey = "shop_id"

// ShopContext đọc shop ID từ query param "shop" hoặc header "X-Shop-ID"
// và đưa vào Locals cho các handler phía sau.
// Shop ID không hợp lệ (không phải hex 24 ký tự) bị chặn ngay tại đây;
// request không có shop ID vẫn đi tiếp, handler tự quyết định có bắt buộc không.
func ShopContext() fiber.Handler {
	return func(c fiber.Ctx) error {
		shopID := c.Query("shop")
		if shopID == "" {
			shopID = c.Get("X-Shop-ID")
		}

		if shopID == "" {
			return c.Next()
		}

		if !primitive.IsValidObjectID(shopID) {
			return c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    common.ErrCodeValidationFormat.Code,
				"message": "Shop ID must be a 24-character hex string",
			})
		}

		c.Locals(shopIDLocalKey, shopID)
		return c.Next()
	}
}

// GetShopID lấy shop ID đã được ShopContext đưa vào Locals.
// Trả về lỗi validation nếu request không mang shop ID.
func GetShopID(c fiber.Ctx) (primitive.ObjectID, error) {
	shopID, ok := c.Locals(shopIDLocalKey).(string)
	if !ok || shopID == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"Shop ID is required (query param 'shop' or header 'X-Shop-ID')",
			common.StatusBadRequest,
			nil,
		)
	}
	oid, err := primitive.ObjectIDFromHex(shopID)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return oid, nil
}

// GetShopIDOptional lấy shop ID nếu có, trả về NilObjectID nếu request không mang shop ID
func GetShopIDOptional(c fiber.Ctx) primitive.ObjectID {
	shopID, ok := c.Locals(shopIDLocalKey).(string)
	if !ok || shopID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(shopID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
