package producthdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	productdto "phone_commerce/internal/api/product/dto"
	models "phone_commerce/internal/api/product/models"
	productsvc "phone_commerce/internal/api/product/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý các route liên quan đến sản phẩm tồn kho
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput]
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	service, err := productsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *productdto.ProductCreateInput, shopID primitive.ObjectID) (models.Product, error) {
		return models.Product{
			Shop:          shopID,
			Name:          input.Name,
			Code:          input.Code,
			IMEI:          input.IMEI,
			Category:      input.Category,
			Quantity:      input.Quantity,
			PurchasePrice: input.PurchasePrice,
			SalePrice:     input.SalePrice,
		}, nil
	}
	return &ProductHandler{BaseHandler: base}, nil
}
