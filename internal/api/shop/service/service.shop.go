// Package shopsvc - service cho domain shop.
package shopsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/shop/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// ShopService là cấu trúc chứa các phương thức liên quan đến cửa hàng
type ShopService struct {
	*basesvc.BaseServiceMongoImpl[models.Shop]
}

// NewShopService tạo mới ShopService
func NewShopService() (*ShopService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("failed to get shops collection: %v", common.ErrNotFound)
	}

	service := &ShopService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Shop](collection),
	}
	service.SetSearchFields("name", "slug")
	service.SetFilterFields("name", "slug", "address", "phone", "active", "createdAt")
	return service, nil
}
