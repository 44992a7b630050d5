package sizehdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	sizedto "phone_commerce/internal/api/size/dto"
	models "phone_commerce/internal/api/size/models"
	sizesvc "phone_commerce/internal/api/size/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SizeHandler xử lý các route liên quan đến dung lượng máy
type SizeHandler struct {
	*basehdl.BaseHandler[models.Size, sizedto.SizeCreateInput, sizedto.SizeUpdateInput]
}

// NewSizeHandler tạo instance mới của SizeHandler
func NewSizeHandler() (*SizeHandler, error) {
	service, err := sizesvc.NewSizeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create size service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Size, sizedto.SizeCreateInput, sizedto.SizeUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *sizedto.SizeCreateInput, shopID primitive.ObjectID) (models.Size, error) {
		return models.Size{
			Shop:     shopID,
			Name:     input.Name,
			Code:     input.Code,
			Describe: input.Describe,
		}, nil
	}
	return &SizeHandler{BaseHandler: base}, nil
}
