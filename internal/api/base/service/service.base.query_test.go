package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "phone_commerce/internal/api/base/models"
)

func TestNormalizeFilter_CoercesReferenceKeys(t *testing.T) {
	oid := primitive.NewObjectID()

	filter := map[string]interface{}{
		"shop":     oid.Hex(),
		"vendorId": oid.Hex(),
		"name":     "iPhone 13", // key thường giữ nguyên
	}
	out := NormalizeFilter(filter)

	assert.Equal(t, oid, out["shop"])
	assert.Equal(t, oid, out["vendorId"])
	assert.Equal(t, "iPhone 13", out["name"])

	// Filter gốc không bị mutate
	assert.Equal(t, oid.Hex(), filter["shop"])
}

func TestNormalizeFilter_ExtendedJSONOid(t *testing.T) {
	oid := primitive.NewObjectID()
	out := NormalizeFilter(map[string]interface{}{
		"product": map[string]interface{}{"$oid": oid.Hex()},
	})
	assert.Equal(t, oid, out["product"])
}

func TestNormalizeFilter_OperatorMapAndArray(t *testing.T) {
	oid1 := primitive.NewObjectID()
	oid2 := primitive.NewObjectID()

	out := NormalizeFilter(map[string]interface{}{
		"vendor": map[string]interface{}{
			"$in": []interface{}{oid1.Hex(), oid2.Hex()},
		},
	})

	inner, ok := out["vendor"].(map[string]interface{})
	require.True(t, ok)
	arr, ok := inner["$in"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{oid1, oid2}, arr)
}

func TestNormalizeFilter_TopLevelOr(t *testing.T) {
	oid := primitive.NewObjectID()
	out := NormalizeFilter(map[string]interface{}{
		"$or": []interface{}{
			map[string]interface{}{"shop": oid.Hex()},
			map[string]interface{}{"status": "done"},
		},
	})

	subs, ok := out["$or"].([]interface{})
	require.True(t, ok)
	require.Len(t, subs, 2)

	first, ok := subs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, oid, first["shop"])

	second, ok := subs[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "done", second["status"])
}

func TestNormalizeFilter_InvalidHexKept(t *testing.T) {
	// Hex sai giữ nguyên chuỗi: filter không match thay vì lỗi
	out := NormalizeFilter(map[string]interface{}{"shop": "not-a-hex"})
	assert.Equal(t, "not-a-hex", out["shop"])
}

func TestNormalizeFilter_Nil(t *testing.T) {
	assert.Nil(t, NormalizeFilter(nil))
}

func TestSanitizeFilter_DropsUnknownKeys(t *testing.T) {
	filter := map[string]interface{}{
		"name":     "iPhone",
		"$where":   "sleep(1000)", // key lạ bị loại
		"internal": true,
		"shop":     "abc", // shop luôn được phép
	}
	out := SanitizeFilter(filter, []string{"name", "code"})

	assert.Equal(t, "iPhone", out["name"])
	assert.Equal(t, "abc", out["shop"])
	_, exists := out["internal"]
	assert.False(t, exists)
	_, exists = out["$where"]
	assert.False(t, exists)

	// Filter gốc không bị mutate
	assert.Contains(t, filter, "internal")
}

func TestSanitizeFilter_RecursesIntoOr(t *testing.T) {
	out := SanitizeFilter(map[string]interface{}{
		"$or": []interface{}{
			map[string]interface{}{"name": "a", "secret": 1},
			map[string]interface{}{"code": "b"},
		},
	}, []string{"name", "code"})

	subs := out["$or"].([]interface{})
	first := subs[0].(map[string]interface{})
	assert.Equal(t, "a", first["name"])
	_, exists := first["secret"]
	assert.False(t, exists)
}

func TestSanitizeFilter_EmptyAllowListPassthrough(t *testing.T) {
	filter := map[string]interface{}{"anything": 1}
	out := SanitizeFilter(filter, nil)
	assert.Equal(t, filter, out)
}

func TestBuildSearchFilter(t *testing.T) {
	assert.Nil(t, BuildSearchFilter("", []string{"name"}))
	assert.Nil(t, BuildSearchFilter("   ", []string{"name"}))
	assert.Nil(t, BuildSearchFilter("abc", nil))

	out := BuildSearchFilter("iphone", []string{"name", "code"})
	require.NotNil(t, out)
	or, ok := out["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "iphone", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"code": bson.M{"$regex": "iphone", "$options": "i"}}, or[1])
}

func TestBuildSearchFilter_QuotesRegexMeta(t *testing.T) {
	// Ký tự đặc biệt phải được match theo nghĩa đen
	out := BuildSearchFilter("a.b*c", []string{"name"})
	require.NotNil(t, out)
	or := out["$or"].(bson.A)
	cond := or[0].(bson.M)["name"].(bson.M)
	assert.Equal(t, `a\.b\*c`, cond["$regex"])
}

func TestBuildSortStage_Default(t *testing.T) {
	want := bson.D{{Key: "createdAt", Value: -1}}

	assert.Equal(t, want, buildSortStage(nil))
	assert.Equal(t, want, buildSortStage(map[string]int{}))
	// Toàn giá trị không hợp lệ cũng rơi về mặc định
	assert.Equal(t, want, buildSortStage(map[string]int{"name": 5}))
}

func TestBuildSortStage_StableOrder(t *testing.T) {
	out := buildSortStage(map[string]int{"name": 1, "date": -1, "bad": 0})
	assert.Equal(t, bson.D{
		{Key: "date", Value: -1},
		{Key: "name", Value: 1},
	}, out)
}

func TestBuildProjection_PassthroughFlags(t *testing.T) {
	assert.Nil(t, buildProjection(nil))
	assert.Nil(t, buildProjection(map[string]int{"  ": 1}))

	// Flag truyền nguyên vẹn, kể cả khi client trộn include/exclude.
	// Driver sẽ trả lỗi projection, handler chuyển thành 400.
	out := buildProjection(map[string]int{"name": 1, "note": 0})
	assert.Equal(t, bson.M{"name": 1, "note": 0}, out)
}

func TestBuildListPipeline_NoPagination(t *testing.T) {
	query := &basemodels.ListQuery{
		Filter: map[string]interface{}{"status": "done"},
	}
	pipeline := BuildListPipeline(query, nil)

	require.Len(t, pipeline, 2)
	assert.Equal(t, bson.M{"status": "done"}, pipeline[0]["$match"])
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, pipeline[1]["$sort"])
}

func TestBuildListPipeline_NilQuery(t *testing.T) {
	pipeline := BuildListPipeline(nil, nil)
	require.Len(t, pipeline, 2)
	assert.Equal(t, bson.M{}, pipeline[0]["$match"])
}

func TestBuildListPipeline_PaginationSkipMath(t *testing.T) {
	query := &basemodels.ListQuery{
		Pagination: &basemodels.Pagination{PageSize: 20, CurrentPage: 3},
	}
	pipeline := BuildListPipeline(query, nil)

	require.Len(t, pipeline, 3)
	facet, ok := pipeline[2]["$facet"].(bson.M)
	require.True(t, ok)

	dataStages, ok := facet["data"].([]bson.M)
	require.True(t, ok)
	require.Len(t, dataStages, 2)
	// currentPage 0-based: trang 3 bỏ qua 60 bản ghi
	assert.Equal(t, int64(60), dataStages[0]["$skip"])
	assert.Equal(t, int64(20), dataStages[1]["$limit"])

	countStages, ok := facet["count"].([]bson.M)
	require.True(t, ok)
	require.Len(t, countStages, 1)
	assert.Equal(t, "totalCount", countStages[0]["$count"])
}

func TestBuildListPipeline_PaginationDefaults(t *testing.T) {
	query := &basemodels.ListQuery{
		Pagination: &basemodels.Pagination{PageSize: 0, CurrentPage: -2},
	}
	pipeline := BuildListPipeline(query, nil)

	facet := pipeline[2]["$facet"].(bson.M)
	dataStages := facet["data"].([]bson.M)
	assert.Equal(t, int64(0), dataStages[0]["$skip"])
	assert.Equal(t, int64(10), dataStages[1]["$limit"])
}

func TestBuildListPipeline_ProjectionInsideFacet(t *testing.T) {
	query := &basemodels.ListQuery{
		Pagination: &basemodels.Pagination{PageSize: 5, CurrentPage: 0},
		Select:     map[string]int{"name": 1},
	}
	pipeline := BuildListPipeline(query, nil)

	facet := pipeline[2]["$facet"].(bson.M)
	dataStages := facet["data"].([]bson.M)
	require.Len(t, dataStages, 3)
	assert.Equal(t, bson.M{"name": 1}, dataStages[2]["$project"])

	// count đếm trước skip/limit nên không có $project
	countStages := facet["count"].([]bson.M)
	require.Len(t, countStages, 1)
}

func TestBuildListPipeline_SearchCombinedWithFilter(t *testing.T) {
	query := &basemodels.ListQuery{
		Filter:      map[string]interface{}{"status": "done"},
		SearchQuery: "nam",
	}
	pipeline := BuildListPipeline(query, []string{"customerName"})

	match, ok := pipeline[0]["$match"].(bson.M)
	require.True(t, ok)
	and, ok := match["$and"].(bson.A)
	require.True(t, ok)
	assert.Len(t, and, 2)
}
