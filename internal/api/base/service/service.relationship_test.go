package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedModel struct {
	_Relationships struct{} `relationship:"collection:vendor_transactions,field:vendor,message:Cannot delete vendor: %d transaction(s) still reference it"`
	Name           string   `bson:"name"`
}

type multiTaggedModel struct {
	_Relationships struct{} `relationship:"collection:products,field:shop|collection:product_logs,field:shop,optional:true"`
}

type untaggedModel struct {
	Name string `bson:"name"`
}

func TestParseRelationshipTag_SingleWithMessage(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(taggedModel{}))
	require.Len(t, rels, 1)

	rel := rels[0]
	assert.Equal(t, "vendor_transactions", rel.CollectionName)
	assert.Equal(t, "vendor", rel.FieldName)
	// Message chứa ':' nên phải được giữ nguyên phần sau dấu hai chấm đầu tiên
	assert.Equal(t, "Cannot delete vendor: %d transaction(s) still reference it", rel.ErrorMessage)
	assert.False(t, rel.Optional)
}

func TestParseRelationshipTag_MultipleAndOptional(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(multiTaggedModel{}))
	require.Len(t, rels, 2)

	assert.Equal(t, "products", rels[0].CollectionName)
	assert.False(t, rels[0].Optional)

	assert.Equal(t, "product_logs", rels[1].CollectionName)
	assert.True(t, rels[1].Optional)
	// Không khai báo message thì dùng message mặc định
	assert.Contains(t, rels[1].ErrorMessage, "product_logs")
	assert.Contains(t, rels[1].ErrorMessage, "%d")
}

func TestParseRelationshipTag_NoTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(untaggedModel{}))
	assert.Empty(t, rels)
}

func TestParseRelationshipTagValue_IgnoresIncomplete(t *testing.T) {
	// Thiếu field thì quan hệ bị bỏ qua
	rels := parseRelationshipTagValue("collection:products")
	assert.Empty(t, rels)

	rels = parseRelationshipTagValue("")
	assert.Empty(t, rels)
}
