package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestParseIndexTag(t *testing.T) {
	configs := parseIndexTag("single;order:-1")
	require.Len(t, configs, 2)
	_, hasSingle := configs[0]["single"]
	assert.True(t, hasSingle)
	assert.Equal(t, "-1", configs[1]["order"])

	configs = parseIndexTag("unique,sparse")
	require.Len(t, configs, 1)
	_, hasUnique := configs[0]["unique"]
	_, hasSparse := configs[0]["sparse"]
	assert.True(t, hasUnique)
	assert.True(t, hasSparse)

	configs = parseIndexTag("compound:shop_code_unique")
	require.Len(t, configs, 1)
	assert.Equal(t, "shop_code_unique", configs[0]["compound"])

	configs = parseIndexTag("ttl:3600")
	require.Len(t, configs, 1)
	assert.Equal(t, "3600", configs[0]["ttl"])
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, -1, parseOrder("single;order:-1"))
	assert.Equal(t, 1, parseOrder("single"))
	assert.Equal(t, 1, parseOrder("single;order:1"))
}

func TestBsonFieldName(t *testing.T) {
	type model struct {
		Name    string `bson:"name,omitempty"`
		Code    string `bson:"code"`
		Skipped string `bson:"-"`
		NoTag   string
	}
	mt := reflect.TypeOf(model{})

	assert.Equal(t, "name", bsonFieldName(mt.Field(0)))
	assert.Equal(t, "code", bsonFieldName(mt.Field(1)))
	assert.Equal(t, "", bsonFieldName(mt.Field(2)))
	assert.Equal(t, "", bsonFieldName(mt.Field(3)))
}

func TestCompareIndex(t *testing.T) {
	keys := bson.D{{Key: "code", Value: 1}}

	// Index giống hệt cấu hình mong muốn
	existing := bson.M{
		"key":    bson.M{"code": int32(1)},
		"unique": true,
	}
	assert.True(t, compareIndex(existing, keys, options.Index().SetUnique(true)))

	// Index cũ không unique, cấu hình mới unique => mismatch
	existing = bson.M{"key": bson.M{"code": int32(1)}}
	assert.False(t, compareIndex(existing, keys, options.Index().SetUnique(true)))

	// Thiếu key => mismatch
	existing = bson.M{"key": bson.M{"name": int32(1)}}
	assert.False(t, compareIndex(existing, keys, options.Index()))

	// Thứ tự sắp xếp khác => mismatch
	existing = bson.M{"key": bson.M{"code": int32(-1)}}
	assert.False(t, compareIndex(existing, keys, options.Index()))
}
