// Package sizesvc - service cho domain size.
package sizesvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/size/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// SizeService là cấu trúc chứa các phương thức liên quan đến dung lượng máy
type SizeService struct {
	*basesvc.BaseServiceMongoImpl[models.Size]
}

// NewSizeService tạo mới SizeService
func NewSizeService() (*SizeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sizes)
	if !exist {
		return nil, fmt.Errorf("failed to get sizes collection: %v", common.ErrNotFound)
	}

	service := &SizeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Size](collection),
	}
	service.SetSearchFields("name", "code")
	service.SetFilterFields("name", "code", "describe", "createdAt")
	return service, nil
}
