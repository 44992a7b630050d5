// Package productsvc - service cho domain product.
package productsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/product/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm tồn kho
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	service := &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
	}
	service.SetSearchFields("name", "code", "imei")
	service.SetFilterFields("name", "code", "imei", "category", "quantity", "purchasePrice", "salePrice", "createdAt")
	// Category là nhãn cần match chính xác trên dashboard, chuẩn hóa khi ghi
	service.SetNormalizeFields("category")
	return service, nil
}
