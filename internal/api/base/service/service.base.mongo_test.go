package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     int64              `bson:"price"`
	Secret    string             `bson:"-"`
	CreatedAt int64              `bson:"createdAt"`
	UpdatedAt int64              `bson:"updatedAt"`
}

func TestToUpdateData_SkipsZeroAndReservedFields(t *testing.T) {
	model := sampleModel{
		ID:        primitive.NewObjectID(),
		Name:      "Nhà Giả Kim",
		Price:     0,
		Secret:    "không được lộ",
		CreatedAt: 123,
		UpdatedAt: 456,
	}

	update, err := ToUpdateData(&model)
	assert.NoError(t, err)

	// Chỉ field khác zero và không thuộc nhóm _id/createdAt/updatedAt/"-"
	assert.Equal(t, bson.M{"name": "Nhà Giả Kim"}, update.Set)
}

func TestToUpdateData_IncludesSetFields(t *testing.T) {
	model := sampleModel{Name: "Đắc Nhân Tâm", Price: 95000}

	update, err := ToUpdateData(&model)
	assert.NoError(t, err)
	assert.Equal(t, "Đắc Nhân Tâm", update.Set["name"])
	assert.Equal(t, int64(95000), update.Set["price"])
}

func TestUpdateDataToBson(t *testing.T) {
	update := &UpdateData{
		Set:   bson.M{"name": "x"},
		Unset: bson.M{"token": ""},
		Push:  bson.M{"comments": "c"},
		Inc:   bson.M{"views": 1},
	}

	doc := update.toBson()
	assert.Equal(t, bson.M{"name": "x"}, doc["$set"])
	assert.Equal(t, bson.M{"token": ""}, doc["$unset"])
	assert.Equal(t, bson.M{"comments": "c"}, doc["$push"])
	assert.Equal(t, bson.M{"views": 1}, doc["$inc"])
	assert.NotContains(t, doc, "$addToSet")
}
