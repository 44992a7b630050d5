package payouthdl

import (
	"fmt"
	"time"

	basehdl "phone_commerce/internal/api/base/handler"
	payoutdto "phone_commerce/internal/api/payout/dto"
	models "phone_commerce/internal/api/payout/models"
	payoutsvc "phone_commerce/internal/api/payout/service"
	"phone_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayoutHandler xử lý các route liên quan đến phiếu chi
type PayoutHandler struct {
	*basehdl.BaseHandler[models.Payout, payoutdto.PayoutCreateInput, payoutdto.PayoutUpdateInput]
}

// NewPayoutHandler tạo instance mới của PayoutHandler
func NewPayoutHandler() (*PayoutHandler, error) {
	service, err := payoutsvc.NewPayoutService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payout service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Payout, payoutdto.PayoutCreateInput, payoutdto.PayoutUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *payoutdto.PayoutCreateInput, shopID primitive.ObjectID) (models.Payout, error) {
		date := input.Date
		if date <= 0 {
			date = utility.CurrentTimeInMilli()
		}
		dateString, month, year := utility.DateParts(time.UnixMilli(date))

		return models.Payout{
			Shop:       shopID,
			Code:       input.Code,
			Reason:     input.Reason,
			Amount:     input.Amount,
			Receiver:   input.Receiver,
			Date:       date,
			DateString: dateString,
			Month:      month,
			Year:       year,
		}, nil
	}
	return &PayoutHandler{BaseHandler: base}, nil
}
