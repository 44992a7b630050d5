// Package vendorsvc - service cho domain vendor.
package vendorsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/vendors/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// VendorService là cấu trúc chứa các phương thức liên quan đến nhà cung cấp
type VendorService struct {
	*basesvc.BaseServiceMongoImpl[models.Vendor]
}

// NewVendorService tạo mới VendorService
func NewVendorService() (*VendorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	service := &VendorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Vendor](collection),
	}
	service.SetSearchFields("name", "code", "phone")
	service.SetFilterFields("name", "code", "phone", "address", "note", "createdAt")
	return service, nil
}
