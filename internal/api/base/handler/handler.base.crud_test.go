package basehdl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"phone_commerce/internal/common"
)

func TestBuildUpdateMap_OnlyNonZeroFields(t *testing.T) {
	type updateInput struct {
		Name   string  `bson:"name,omitempty"`
		Note   string  `bson:"note,omitempty"`
		Amount float64 `bson:"amount,omitempty"`
	}

	set, err := buildUpdateMap(updateInput{Name: "Pin", Amount: 150000})
	require.NoError(t, err)

	assert.Equal(t, "Pin", set["name"])
	assert.EqualValues(t, 150000, set["amount"])
	// Field client không gửi thì không nằm trong $set
	_, exists := set["note"]
	assert.False(t, exists)
}

func TestBuildUpdateMap_EmptyInput(t *testing.T) {
	type updateInput struct {
		Name string `bson:"name,omitempty"`
	}

	set, err := buildUpdateMap(updateInput{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStripReservedUpdateKeys(t *testing.T) {
	payload := map[string]interface{}{
		"shop":      "000000000000000000000001",
		"createdAt": int64(1),
		"updatedAt": int64(2),
		"_id":       "000000000000000000000002",
		"id":        "000000000000000000000002",
		"name":      "Pin",
		"amount":    float64(150000),
	}
	stripReservedUpdateKeys(payload)

	// Field do server quản lý bị loại, field nghiệp vụ giữ nguyên
	assert.Equal(t, map[string]interface{}{
		"name":   "Pin",
		"amount": float64(150000),
	}, payload)
}

func TestStripReservedUpdateKeys_OnlyReservedBecomesEmpty(t *testing.T) {
	payload := map[string]interface{}{
		"shop":      "000000000000000000000001",
		"createdAt": int64(1),
	}
	stripReservedUpdateKeys(payload)
	assert.Empty(t, payload)
}

func TestParseIDList(t *testing.T) {
	oid1 := primitive.NewObjectID()
	oid2 := primitive.NewObjectID()

	out, err := parseIDList([]string{oid1.Hex(), oid2.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{oid1, oid2}, out)
}

func TestParseIDList_InvalidID(t *testing.T) {
	oid := primitive.NewObjectID()

	_, err := parseIDList([]string{oid.Hex(), "not-hex"})
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeValidationFormat.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestModelID(t *testing.T) {
	type doc struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}

	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), modelID(doc{ID: oid}))
	assert.Equal(t, oid.Hex(), modelID(&doc{ID: oid}))
	assert.Equal(t, "", modelID("not a struct"))

	type noID struct{ Name string }
	assert.Equal(t, "", modelID(noID{Name: "x"}))
}
