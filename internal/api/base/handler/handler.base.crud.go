package basehdl

// Package basehdl - base CRUD handlers.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.

import (
	"encoding/json"
	"fmt"
	"reflect"

	basemodels "phone_commerce/internal/api/base/models"
	basesvc "phone_commerce/internal/api/base/service"
	"phone_commerce/internal/api/middleware"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
	"phone_commerce/internal/utility"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// BaseHandler cung cấp bộ handler CRUD chuẩn cho một resource.
// Type Parameters:
//   - T: Model của resource
//   - CreateInput: DTO cho request tạo mới
//   - UpdateInput: DTO cho request cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T]

	// BuildModel chuyển CreateInput thành Model, gắn shop ID từ request.
	// Mỗi resource handler phải gán hàm này trong constructor.
	BuildModel func(input *CreateInput, shopID primitive.ObjectID) (T, error)

	// ShopRequired = true thì request tạo mới bắt buộc phải mang shop ID
	ShopRequired bool
}

// NewBaseHandler tạo BaseHandler với service được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: service,
	}
}

// ParseRequestBody parse JSON body vào out. Body rỗng không bị coi là lỗi.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// ValidateInput validate input với struct tag (validate, oneof, no_xss, exists, ...)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if ok := isValidationErrors(err, &validationErrs); ok {
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				fields,
			)
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*target = verrs
		return true
	}
	return false
}

// modelID lấy ID (hex) từ model bằng reflection
func modelID(data interface{}) string {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("ID")
	if !f.IsValid() || !f.CanInterface() {
		return ""
	}
	if id, ok := f.Interface().(primitive.ObjectID); ok {
		return id.Hex()
	}
	return ""
}

// buildUpdateMap chuyển UpdateInput thành map chỉ chứa các field non-zero (merge-set)
func buildUpdateMap(input interface{}) (map[string]interface{}, error) {
	inputMap, err := utility.ToMap(input)
	if err != nil {
		return nil, err
	}
	set := make(map[string]interface{})
	for k, v := range inputMap {
		if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
			set[k] = v
		}
	}
	return set, nil
}

// parseIDParam đọc và validate param :id từ URL
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID is required in URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' is not a valid ObjectID (must be a 24-character hex string)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// Các field do server quản lý, client không được update trực tiếp
var reservedUpdateKeys = []string{"_id", "id", "shop", "createdAt", "updatedAt"}

// stripReservedUpdateKeys loại các field do server quản lý khỏi payload update.
// Update đơn lẻ đi qua DTO UpdateInput nên không chứa các field này;
// update hàng loạt nhận map thô từ client nên phải lọc tại đây.
func stripReservedUpdateKeys(payload map[string]interface{}) {
	for _, key := range reservedUpdateKeys {
		delete(payload, key)
	}
}

// parseIDList validate một danh sách ID chuỗi hex
func parseIDList(ids []string) ([]primitive.ObjectID, error) {
	objectIds := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		if !primitive.IsValidObjectID(id) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' at position %d is not a valid ObjectID", id, i),
				common.StatusBadRequest,
				nil,
			)
		}
		objectIds[i] = utility.String2ObjectID(id)
	}
	return objectIds, nil
}

// AddOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput), validate rồi build thành Model.
// Shop ID lấy từ query param "shop" (qua middleware ShopContext).
// Response chỉ trả về ID của bản ghi vừa tạo.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) AddOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Request body is not valid JSON or does not match the expected structure: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Validate input với struct tag
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Lấy shop ID từ request
		var shopID primitive.ObjectID
		if h.ShopRequired {
			var err error
			shopID, err = middleware.GetShopID(c)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		} else {
			shopID = middleware.GetShopIDOptional(c)
		}

		if h.BuildModel == nil {
			h.HandleResponse(c, nil, common.ErrInternal)
			return nil
		}
		model, err := h.BuildModel(&input, shopID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.BaseService.InsertOne(c.Context(), model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"id": modelID(created)}, nil)
		return nil
	})
}

// GetAll trả về danh sách theo ListQuery trong body.
// Query param "q" (nếu có) ghi đè searchQuery trong body.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var query basemodels.ListQuery
		if err := h.ParseRequestBody(c, &query); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("List query is not valid JSON: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if q := c.Query("q"); q != "" {
			query.SearchQuery = q
		}

		result, err := h.BaseService.FindAllWithQuery(c.Context(), &query)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleListResponse(c, result.Data, result.Count, nil)
		return nil
	})
}

// GetAllByShop như GetAll nhưng ép filter theo shop của request.
// Filter "shop" do client gửi (nếu có) bị ghi đè bởi shop từ context.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetAllByShop(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := middleware.GetShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var query basemodels.ListQuery
		if err := h.ParseRequestBody(c, &query); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("List query is not valid JSON: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if q := c.Query("q"); q != "" {
			query.SearchQuery = q
		}

		if query.Filter == nil {
			query.Filter = make(map[string]interface{})
		}
		query.Filter["shop"] = shopID

		result, err := h.BaseService.FindAllWithQuery(c.Context(), &query)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleListResponse(c, result.Data, result.Count, nil)
		return nil
	})
}

// FindOneById tìm một document theo ID trong URL params.
// Hỗ trợ query param "projection" (JSON map field -> 0/1).
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Projection tùy chọn qua query string
		if projStr := c.Query("projection"); projStr != "" {
			var projection bson.M
			if err := json.Unmarshal([]byte(projStr), &projection); err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Projection must be a JSON object: %v", err),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
			opts := mongoopts.FindOne().SetProjection(projection)
			data, err := h.BaseService.FindOne(c.Context(), bson.M{"_id": id}, opts)
			h.HandleResponse(c, data, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ID (merge-set).
// Chỉ các field có mặt trong body bị thay đổi, các field khác giữ nguyên.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Request body is not valid JSON or does not match the expected structure: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set, err := buildUpdateMap(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if len(set) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Update payload is empty",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, set)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateMultiple cập nhật nhiều document với cùng một payload.
// Body: {"ids": [...], <các field cần update>}.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMultiple(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var body map[string]interface{}
		if err := h.ParseRequestBody(c, &body); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Request body is not a valid JSON object: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		rawIds, ok := body["ids"].([]interface{})
		if !ok || len(rawIds) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Field 'ids' must be a non-empty array of ObjectID strings",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		ids := make([]string, 0, len(rawIds))
		for _, raw := range rawIds {
			idStr, ok := raw.(string)
			if !ok {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					"Each element of 'ids' must be an ObjectID string",
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			ids = append(ids, idStr)
		}
		objectIds, err := parseIDList(ids)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Các field còn lại là payload update, bỏ các field do server quản lý
		delete(body, "ids")
		stripReservedUpdateKeys(body)
		if len(body) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Update payload is empty",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		modified, err := h.BaseService.UpdateManyByIds(c.Context(), objectIds, body)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"modifiedCount": modified}, nil)
		return nil
	})
}

// DeleteById xóa một document theo ID trong URL params.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.BaseService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"id": id.Hex()}, nil)
		return nil
	})
}

// DeleteMultiple xóa nhiều document theo danh sách ID trong body: {"ids": [...]}.
// Các bản ghi được bảo vệ bị bỏ qua và trả về trong skippedIds.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMultiple(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := h.ParseRequestBody(c, &body); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Request body is not a valid JSON object: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if len(body.IDs) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Field 'ids' must be a non-empty array of ObjectID strings",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		objectIds, err := parseIDList(body.IDs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		deleted, skipped, err := h.BaseService.DeleteManyByIds(c.Context(), objectIds)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		skippedIds := make([]string, 0, len(skipped))
		for _, id := range skipped {
			skippedIds = append(skippedIds, id.Hex())
		}

		h.HandleResponse(c, fiber.Map{
			"deletedCount": deleted,
			"skippedIds":   skippedIds,
		}, nil)
		return nil
	})
}
