// Package payoutsvc - service cho domain payout.
package payoutsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/payout/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// PayoutService là cấu trúc chứa các phương thức liên quan đến phiếu chi
type PayoutService struct {
	*basesvc.BaseServiceMongoImpl[models.Payout]
}

// NewPayoutService tạo mới PayoutService
func NewPayoutService() (*PayoutService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Payouts)
	if !exist {
		return nil, fmt.Errorf("failed to get payouts collection: %v", common.ErrNotFound)
	}

	service := &PayoutService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Payout](collection),
	}
	service.SetSearchFields("code", "reason")
	service.SetFilterFields("code", "reason", "amount", "receiver", "date", "dateString", "month", "year", "createdAt")
	return service, nil
}
