package productloghdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	productlogdto "phone_commerce/internal/api/productlog/dto"
	models "phone_commerce/internal/api/productlog/models"
	productlogsvc "phone_commerce/internal/api/productlog/service"
	"phone_commerce/internal/common"
	"phone_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductLogHandler xử lý các route liên quan đến nhật ký sản phẩm.
// Delete của domain này đi qua ProductLogService nên document được archive
// thay vì xóa hẳn; RestoreById đưa document từ archive về lại.
type ProductLogHandler struct {
	*basehdl.BaseHandler[models.ProductLog, productlogdto.ProductLogCreateInput, productlogdto.ProductLogUpdateInput]
	service *productlogsvc.ProductLogService
}

// NewProductLogHandler tạo instance mới của ProductLogHandler
func NewProductLogHandler() (*ProductLogHandler, error) {
	service, err := productlogsvc.NewProductLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product log service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.ProductLog, productlogdto.ProductLogCreateInput, productlogdto.ProductLogUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *productlogdto.ProductLogCreateInput, shopID primitive.ObjectID) (models.ProductLog, error) {
		return models.ProductLog{
			Shop:        shopID,
			Product:     utility.String2ObjectID(input.Product),
			ProductName: input.ProductName,
			IMEI:        input.IMEI,
			Action:      input.Action,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Note:        input.Note,
		}, nil
	}
	return &ProductLogHandler{BaseHandler: base, service: service}, nil
}

// RestoreById khôi phục một nhật ký đã xóa từ archive về collection chính
func (h *ProductLogHandler) RestoreById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		doc, err := h.service.RestoreById(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, doc, err)
		return nil
	})
}
