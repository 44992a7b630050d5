package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "NEW PHONE", NormalizeSpace("  NEW   PHONE  "))
	assert.Equal(t, "2HAND", NormalizeSpace("2HAND"))
	assert.Equal(t, "a b c", NormalizeSpace("a\tb\n c"))
	assert.Equal(t, "", NormalizeSpace("   "))
	assert.Equal(t, "", NormalizeSpace(""))
}

func TestDateParts(t *testing.T) {
	d := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.Local)
	dateString, month, year := DateParts(d)

	assert.Equal(t, "07-03-2024", dateString)
	assert.Equal(t, 3, month)
	assert.Equal(t, 2024, year)
}

func TestString2ObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid, String2ObjectID(oid.Hex()))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("invalid"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestStringArray2ObjectIDArray_SkipsInvalid(t *testing.T) {
	oid1 := primitive.NewObjectID()
	oid2 := primitive.NewObjectID()

	out := StringArray2ObjectIDArray([]string{oid1.Hex(), "bad", oid2.Hex()})
	assert.Equal(t, []primitive.ObjectID{oid1, oid2}, out)

	assert.Nil(t, StringArray2ObjectIDArray(nil))
}

func TestToMap_OmitsEmptyFields(t *testing.T) {
	type sample struct {
		Name  string `bson:"name,omitempty"`
		Note  string `bson:"note,omitempty"`
		Count int64  `bson:"count,omitempty"`
	}

	m, err := ToMap(sample{Name: "abc", Count: 5})
	require.NoError(t, err)

	assert.Equal(t, "abc", m["name"])
	assert.EqualValues(t, 5, m["count"])
	// Field zero với omitempty không xuất hiện, update merge không chạm vào
	_, exists := m["note"]
	assert.False(t, exists)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]int{}, 1))
}
