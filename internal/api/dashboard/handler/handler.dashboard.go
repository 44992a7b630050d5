package dashboardhdl

import (
	"fmt"
	"strconv"

	basehdl "phone_commerce/internal/api/base/handler"
	dashboarddto "phone_commerce/internal/api/dashboard/dto"
	dashboardsvc "phone_commerce/internal/api/dashboard/service"
	"phone_commerce/internal/api/middleware"
	"phone_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý các route tổng hợp số liệu
type DashboardHandler struct {
	*basehdl.BaseHandler[struct{}, struct{}, struct{}]
	service *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	service, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	return &DashboardHandler{
		BaseHandler: &basehdl.BaseHandler[struct{}, struct{}, struct{}]{},
		service:     service,
	}, nil
}

// HandleSaleDashboard tổng hợp doanh số theo cửa sổ thời gian của query param day.
// Không gửi day thì tổng hợp từ hôm nay trở đi.
func (h *DashboardHandler) HandleSaleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := middleware.GetShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		day := -1
		if dayStr := c.Query("day"); dayStr != "" {
			parsed, err := strconv.Atoi(dayStr)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					"Query param 'day' must be an integer",
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			day = parsed
		}

		calculation, err := h.service.SaleDashboard(c.Context(), shopID, day)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		return basehdl.WriteCalculation(c, calculation)
	})
}

// HandleStatement tạo sao kê theo ngày cho một tháng trong body {month, year}
func (h *DashboardHandler) HandleStatement(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := middleware.GetShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dashboarddto.StatementInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Request body is not valid JSON: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rows, err := h.service.Statement(c.Context(), shopID, input.Month, input.Year)
		h.HandleResponse(c, rows, err)
		return nil
	})
}
