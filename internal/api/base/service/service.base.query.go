package basesvc

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "phone_commerce/internal/api/base/models"
	"phone_commerce/internal/common"
)

// Các key tham chiếu không có hậu tố Id nhưng vẫn chứa ObjectID
var referenceKeys = map[string]bool{
	"_id":     true,
	"shop":    true,
	"vendor":  true,
	"product": true,
}

// isObjectIDKey kiểm tra key của filter có phải field tham chiếu ObjectID không
func isObjectIDKey(key string) bool {
	if referenceKeys[key] {
		return true
	}
	return strings.HasSuffix(key, "Id") || strings.HasSuffix(key, "ID")
}

// coerceObjectID chuyển value của một field tham chiếu sang primitive.ObjectID nếu có thể.
// Hỗ trợ: chuỗi hex 24 ký tự, extended JSON {"$oid": "..."}, và đệ quy vào
// operator map ($in, $nin, $ne, ...) và mảng.
// Giá trị không chuyển được giữ nguyên (filter sẽ không match thay vì lỗi).
func coerceObjectID(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			return oid
		}
		return v
	case map[string]interface{}:
		// Extended JSON: {"$oid": "..."}
		if oidStr, ok := v["$oid"].(string); ok && len(v) == 1 {
			if oid, err := primitive.ObjectIDFromHex(oidStr); err == nil {
				return oid
			}
			return v
		}
		// Operator map: $in/$nin chứa mảng, các operator khác chứa giá trị đơn
		out := make(map[string]interface{}, len(v))
		for k, vv := range v {
			out[k] = coerceObjectID(vv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = coerceObjectID(e)
		}
		return out
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, e := range v {
			out[i] = coerceObjectID(e)
		}
		return out
	default:
		return value
	}
}

// NormalizeFilter chuẩn hóa filter từ client: các field tham chiếu (key kết thúc
// bằng Id/ID, hoặc key shop/vendor/product/_id) có value chuỗi hex được chuyển
// sang primitive.ObjectID để match với dữ liệu lưu trong MongoDB.
// Các key khác giữ nguyên. Không mutate filter gốc.
func NormalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return nil
	}
	out := make(map[string]interface{}, len(filter))
	for key, value := range filter {
		switch {
		case isObjectIDKey(key):
			out[key] = coerceObjectID(value)
		case strings.HasPrefix(key, "$"):
			// Operator cấp cao ($or, $and, ...) chứa danh sách sub-filter
			if arr, ok := value.([]interface{}); ok {
				subs := make([]interface{}, len(arr))
				for i, e := range arr {
					if subFilter, ok := e.(map[string]interface{}); ok {
						subs[i] = NormalizeFilter(subFilter)
					} else {
						subs[i] = e
					}
				}
				out[key] = subs
			} else {
				out[key] = value
			}
		default:
			out[key] = value
		}
	}
	return out
}

// Các key luôn được phép filter bất kể allow-list của resource
var alwaysAllowedFilterKeys = map[string]bool{
	"_id":  true,
	"shop": true,
}

// Operator logic cấp cao được phép khi có allow-list. Các operator cấp cao
// khác ($where, $expr, ...) bị loại để client không vượt qua allow-list.
var allowedLogicalOperators = map[string]bool{
	"$or":  true,
	"$and": true,
	"$nor": true,
}

// SanitizeFilter loại khỏi filter các key không nằm trong allow-list của resource.
// Operator cấp cao ($or, $and, $nor) được đệ quy vào từng sub-filter.
// Allow-list rỗng = cho phép tất cả key. Không mutate filter gốc.
func SanitizeFilter(filter map[string]interface{}, allowed []string) map[string]interface{} {
	if filter == nil || len(allowed) == 0 {
		return filter
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}
	return sanitizeFilterLevel(filter, allowedSet)
}

func sanitizeFilterLevel(filter map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(filter))
	for key, value := range filter {
		switch {
		case allowedLogicalOperators[key]:
			if arr, ok := value.([]interface{}); ok {
				subs := make([]interface{}, 0, len(arr))
				for _, e := range arr {
					if subFilter, ok := e.(map[string]interface{}); ok {
						subs = append(subs, sanitizeFilterLevel(subFilter, allowed))
					} else {
						subs = append(subs, e)
					}
				}
				out[key] = subs
			}
		case allowed[key] || alwaysAllowedFilterKeys[key]:
			out[key] = value
		}
		// Key ngoài allow-list (kể cả operator lạ như $where) bị loại bỏ
	}
	return out
}

// BuildSearchFilter tạo điều kiện $or tìm substring không phân biệt hoa thường
// trên danh sách field. Trả về nil nếu query rỗng hoặc không có field nào.
func BuildSearchFilter(query string, fields []string) bson.M {
	query = strings.TrimSpace(query)
	if query == "" || len(fields) == 0 {
		return nil
	}

	// QuoteMeta để ký tự đặc biệt trong query được match theo nghĩa đen
	pattern := regexp.QuoteMeta(query)
	or := bson.A{}
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

// buildMatchStage kết hợp filter đã chuẩn hóa với điều kiện search thành $match
func buildMatchStage(query *basemodels.ListQuery, searchFields []string) bson.M {
	normalized := NormalizeFilter(query.Filter)
	search := BuildSearchFilter(query.SearchQuery, searchFields)

	switch {
	case len(normalized) > 0 && search != nil:
		return bson.M{"$and": bson.A{normalized, search}}
	case search != nil:
		return search
	case len(normalized) > 0:
		return bson.M(normalized)
	default:
		return bson.M{}
	}
}

// buildSortStage tạo $sort từ map field -> 1/-1.
// Sort rỗng dùng mặc định createdAt giảm dần (bản ghi mới nhất trước).
// Các key được sắp theo thứ tự alphabet để pipeline ổn định giữa các lần gọi.
func buildSortStage(sortSpec map[string]int) bson.D {
	if len(sortSpec) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	keys := make([]string, 0, len(sortSpec))
	for k := range sortSpec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := bson.D{}
	for _, k := range keys {
		order := sortSpec[k]
		if order != 1 && order != -1 {
			continue
		}
		d = append(d, bson.E{Key: k, Value: order})
	}
	if len(d) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return d
}

// buildProjection tạo $project từ map field -> inclusion flag.
// Flag được truyền nguyên vẹn xuống MongoDB: client trộn include/exclude
// sẽ nhận lỗi projection (DB_004) từ driver thay vì bị sửa ngầm.
func buildProjection(selectFields map[string]int) bson.M {
	if len(selectFields) == 0 {
		return nil
	}
	projection := bson.M{}
	for field, flag := range selectFields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		projection[field] = flag
	}
	if len(projection) == 0 {
		return nil
	}
	return projection
}

// BuildListPipeline tạo aggregation pipeline cho truy vấn danh sách.
// Thứ tự stage: $match -> $sort -> ($project khi không phân trang |
// $facet{count, data: [$skip, $limit, $project]} khi phân trang).
// Skip = pageSize * currentPage (currentPage 0-based).
func BuildListPipeline(query *basemodels.ListQuery, searchFields []string) []bson.M {
	if query == nil {
		query = &basemodels.ListQuery{}
	}

	pipeline := []bson.M{
		{"$match": buildMatchStage(query, searchFields)},
	}

	if sortStage := buildSortStage(query.Sort); sortStage != nil {
		pipeline = append(pipeline, bson.M{"$sort": sortStage})
	}

	projection := buildProjection(query.Select)

	if query.Pagination == nil {
		if projection != nil {
			pipeline = append(pipeline, bson.M{"$project": projection})
		}
		return pipeline
	}

	pageSize := query.Pagination.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	currentPage := query.Pagination.CurrentPage
	if currentPage < 0 {
		currentPage = 0
	}
	skip := pageSize * currentPage

	dataStages := []bson.M{
		{"$skip": skip},
		{"$limit": pageSize},
	}
	if projection != nil {
		dataStages = append(dataStages, bson.M{"$project": projection})
	}

	// count đếm TRƯỚC skip/limit: tổng số bản ghi khớp filter
	pipeline = append(pipeline, bson.M{"$facet": bson.M{
		"count": []bson.M{{"$count": "totalCount"}},
		"data":  dataStages,
	}})

	return pipeline
}

// FindAllWithQuery thực thi truy vấn danh sách qua aggregation pipeline.
// Khi có phân trang, Count là tổng số bản ghi khớp filter trước skip/limit;
// khi không phân trang, Count bằng số bản ghi trả về.
func (s *BaseServiceMongoImpl[T]) FindAllWithQuery(ctx context.Context, query *basemodels.ListQuery) (*basemodels.PageResult[T], error) {
	if query == nil {
		query = &basemodels.ListQuery{}
	}

	// Không có select từ client thì dùng projection mặc định của resource
	if len(query.Select) == 0 && len(s.defaultSelect) > 0 {
		q := *query
		q.Select = s.defaultSelect
		query = &q
	}

	// Chỉ giữ các key filter nằm trong allow-list của resource
	if len(s.filterFields) > 0 && len(query.Filter) > 0 {
		q := *query
		q.Filter = SanitizeFilter(query.Filter, s.filterFields)
		query = &q
	}

	pipeline := BuildListPipeline(query, s.searchFields)

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if query.Pagination == nil {
		var data []T
		if err := cursor.All(ctx, &data); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		if data == nil {
			data = []T{}
		}
		return &basemodels.PageResult[T]{
			Data:  data,
			Count: int64(len(data)),
		}, nil
	}

	var facets []struct {
		Count []basemodels.CountResult `bson:"count"`
		Data  []T                      `bson:"data"`
	}
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	result := &basemodels.PageResult[T]{Data: []T{}}
	if len(facets) > 0 {
		if facets[0].Data != nil {
			result.Data = facets[0].Data
		}
		// Facet count rỗng khi không có bản ghi nào khớp filter
		if len(facets[0].Count) > 0 {
			result.Count = facets[0].Count[0].TotalCount
		}
	}
	return result, nil
}
