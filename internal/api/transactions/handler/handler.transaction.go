package transactionshdl

import (
	"fmt"
	"time"

	basehdl "phone_commerce/internal/api/base/handler"
	transactionsdto "phone_commerce/internal/api/transactions/dto"
	models "phone_commerce/internal/api/transactions/models"
	transactionssvc "phone_commerce/internal/api/transactions/service"
	"phone_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionHandler xử lý các route liên quan đến giao dịch với nhà cung cấp
type TransactionHandler struct {
	*basehdl.BaseHandler[models.VendorTransaction, transactionsdto.TransactionCreateInput, transactionsdto.TransactionUpdateInput]
}

// NewTransactionHandler tạo instance mới của TransactionHandler
func NewTransactionHandler() (*TransactionHandler, error) {
	service, err := transactionssvc.NewTransactionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.VendorTransaction, transactionsdto.TransactionCreateInput, transactionsdto.TransactionUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *transactionsdto.TransactionCreateInput, shopID primitive.ObjectID) (models.VendorTransaction, error) {
		date := input.Date
		if date <= 0 {
			date = utility.CurrentTimeInMilli()
		}
		dateString, month, year := utility.DateParts(time.UnixMilli(date))

		return models.VendorTransaction{
			Shop:       shopID,
			Vendor:     utility.String2ObjectID(input.Vendor),
			Reference:  input.Reference,
			Note:       input.Note,
			Type:       input.Type,
			Amount:     input.Amount,
			Date:       date,
			DateString: dateString,
			Month:      month,
			Year:       year,
		}, nil
	}
	return &TransactionHandler{BaseHandler: base}, nil
}
