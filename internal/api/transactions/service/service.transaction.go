// Package transactionssvc - service cho domain transactions.
package transactionssvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/transactions/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// TransactionService là cấu trúc chứa các phương thức liên quan đến giao dịch với nhà cung cấp
type TransactionService struct {
	*basesvc.BaseServiceMongoImpl[models.VendorTransaction]
}

// NewTransactionService tạo mới TransactionService
func NewTransactionService() (*TransactionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VendorTransactions)
	if !exist {
		return nil, fmt.Errorf("failed to get vendor_transactions collection: %v", common.ErrNotFound)
	}

	service := &TransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.VendorTransaction](collection),
	}
	service.SetSearchFields("reference", "note")
	service.SetFilterFields("vendor", "reference", "note", "type", "amount", "date", "dateString", "month", "year", "createdAt")
	return service, nil
}
