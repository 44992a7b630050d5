package repairhdl

import (
	"fmt"
	"time"

	basehdl "phone_commerce/internal/api/base/handler"
	repairdto "phone_commerce/internal/api/repair/dto"
	models "phone_commerce/internal/api/repair/models"
	repairsvc "phone_commerce/internal/api/repair/service"
	"phone_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RepairHandler xử lý các route liên quan đến phiếu sửa chữa
type RepairHandler struct {
	*basehdl.BaseHandler[models.Repair, repairdto.RepairCreateInput, repairdto.RepairUpdateInput]
}

// NewRepairHandler tạo instance mới của RepairHandler
func NewRepairHandler() (*RepairHandler, error) {
	service, err := repairsvc.NewRepairService()
	if err != nil {
		return nil, fmt.Errorf("failed to create repair service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Repair, repairdto.RepairCreateInput, repairdto.RepairUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *repairdto.RepairCreateInput, shopID primitive.ObjectID) (models.Repair, error) {
		date := input.Date
		if date <= 0 {
			date = utility.CurrentTimeInMilli()
		}
		dateString, month, year := utility.DateParts(time.UnixMilli(date))

		return models.Repair{
			Shop:         shopID,
			CustomerName: input.CustomerName,
			Phone:        input.Phone,
			IMEI:         input.IMEI,
			ProductName:  input.ProductName,
			Issue:        input.Issue,
			Cost:         input.Cost,
			Status:       input.Status,
			Date:         date,
			DateString:   dateString,
			Month:        month,
			Year:         year,
		}, nil
	}
	return &RepairHandler{BaseHandler: base}, nil
}
