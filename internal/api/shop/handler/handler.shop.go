package shophdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	shopdto "phone_commerce/internal/api/shop/dto"
	models "phone_commerce/internal/api/shop/models"
	shopsvc "phone_commerce/internal/api/shop/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopHandler xử lý các route liên quan đến cửa hàng
type ShopHandler struct {
	*basehdl.BaseHandler[models.Shop, shopdto.ShopCreateInput, shopdto.ShopUpdateInput]
}

// NewShopHandler tạo instance mới của ShopHandler.
// Shop là bảng tenant nên không yêu cầu shop ID trong request.
func NewShopHandler() (*ShopHandler, error) {
	service, err := shopsvc.NewShopService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shop service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Shop, shopdto.ShopCreateInput, shopdto.ShopUpdateInput](service)
	base.BuildModel = func(input *shopdto.ShopCreateInput, _ primitive.ObjectID) (models.Shop, error) {
		return models.Shop{
			Name:    input.Name,
			Slug:    input.Slug,
			Address: input.Address,
			Phone:   input.Phone,
			Active:  true,
		}, nil
	}
	return &ShopHandler{BaseHandler: base}, nil
}
