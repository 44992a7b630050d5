// Package repairsvc - service cho domain repair.
package repairsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/repair/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// RepairService là cấu trúc chứa các phương thức liên quan đến phiếu sửa chữa
type RepairService struct {
	*basesvc.BaseServiceMongoImpl[models.Repair]
}

// NewRepairService tạo mới RepairService
func NewRepairService() (*RepairService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Repairs)
	if !exist {
		return nil, fmt.Errorf("failed to get repairs collection: %v", common.ErrNotFound)
	}

	service := &RepairService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Repair](collection),
	}
	service.SetSearchFields("customerName", "phone", "imei")
	service.SetFilterFields("customerName", "phone", "imei", "productName", "issue", "cost", "status", "date", "dateString", "month", "year", "createdAt")
	return service, nil
}
