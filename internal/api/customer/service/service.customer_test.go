package customersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestExcludeDeleted_NilFilter(t *testing.T) {
	filter := ExcludeDeleted(nil)
	assert.Equal(t, bson.M{"isDeleted": bson.M{"$ne": true}}, filter)
}

func TestExcludeDeleted_PreservesExistingConditions(t *testing.T) {
	filter := ExcludeDeleted(bson.M{"email": "a@b.vn"})
	assert.Equal(t, "a@b.vn", filter["email"])
	assert.Equal(t, bson.M{"$ne": true}, filter["isDeleted"])
}

func TestExcludeDeleted_DoesNotOverrideExplicitCondition(t *testing.T) {
	// Caller đã chỉ định điều kiện isDeleted thì giữ nguyên
	filter := ExcludeDeleted(bson.M{"isDeleted": true})
	assert.Equal(t, true, filter["isDeleted"])
}
