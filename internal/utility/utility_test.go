package utility

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	assert.NoError(t, err)
	assert.NotEqual(t, "MatKhau@123", hashed)

	assert.True(t, ComparePassword(hashed, "MatKhau@123"))
	assert.False(t, ComparePassword(hashed, "MatKhau@124"))
	assert.False(t, ComparePassword("khong-phai-hash", "MatKhau@123"))
}

func TestTokenRoundTrip(t *testing.T) {
	employeeID := primitive.NewObjectID().Hex()

	token, err := CreateToken("bi-mat-test", employeeID, "quản lý", 1)
	assert.NoError(t, err)

	claims, err := ParseToken("bi-mat-test", token)
	assert.NoError(t, err)
	assert.Equal(t, employeeID, claims.EmployeeID)
	assert.Equal(t, "quản lý", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("bi-mat-dung", primitive.NewObjectID().Hex(), "quản lý", 1)
	assert.NoError(t, err)

	_, err = ParseToken("bi-mat-sai", token)
	assert.Error(t, err)
}

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.True(t, config.Optional)
	assert.False(t, config.Required)

	config, err = ParseTransformTag("str_int64,default=10,required")
	assert.NoError(t, err)
	assert.Equal(t, "str_int64", config.Type)
	assert.Equal(t, "10", config.Default)
	assert.True(t, config.Required)
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	config := &TransformTagConfig{Type: "str_objectid"}

	value, err := TransformFieldValue(id.Hex(), config, reflect.TypeOf(primitive.ObjectID{}))
	assert.NoError(t, err)
	assert.Equal(t, id, value)

	_, err = TransformFieldValue("khong-phai-object-id", config, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err)
}

func TestTransformFieldValue_EmptyInput(t *testing.T) {
	optional := &TransformTagConfig{Type: "str_objectid", Optional: true}
	value, err := TransformFieldValue("", optional, reflect.TypeOf(primitive.ObjectID{}))
	assert.NoError(t, err)
	assert.Nil(t, value)

	required := &TransformTagConfig{Type: "str_objectid", Required: true}
	_, err = TransformFieldValue("", required, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err)
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	// Chuỗi không hợp lệ trả về ObjectID rỗng
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("xxx"))
}

func TestCache_SetGetExpire(t *testing.T) {
	cache := NewCache(50*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("key", "value")
	value, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", value)

	cache.Delete("key")
	_, found = cache.Get("key")
	assert.False(t, found)

	cache.Set("expiring", 1)
	time.Sleep(60 * time.Millisecond)
	_, found = cache.Get("expiring")
	assert.False(t, found)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "a"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
