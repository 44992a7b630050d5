package vendorhdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	vendordto "phone_commerce/internal/api/vendors/dto"
	models "phone_commerce/internal/api/vendors/models"
	vendorsvc "phone_commerce/internal/api/vendors/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorHandler xử lý các route liên quan đến nhà cung cấp
type VendorHandler struct {
	*basehdl.BaseHandler[models.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput]
}

// NewVendorHandler tạo instance mới của VendorHandler
func NewVendorHandler() (*VendorHandler, error) {
	service, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *vendordto.VendorCreateInput, shopID primitive.ObjectID) (models.Vendor, error) {
		return models.Vendor{
			Shop:    shopID,
			Name:    input.Name,
			Code:    input.Code,
			Phone:   input.Phone,
			Address: input.Address,
			Note:    input.Note,
		}, nil
	}
	return &VendorHandler{BaseHandler: base}, nil
}
