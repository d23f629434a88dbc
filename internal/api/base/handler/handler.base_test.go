package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct {
	Name string `bson:"name"`
}

func newTestHandler() *BaseHandler[testModel, testModel, testModel] {
	return NewBaseHandler[testModel, testModel, testModel](nil)
}

func TestNormalizeFilter_ConvertsIDFields(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"categoryId":  id.Hex(),
		"customer_id": id.Hex(),
		"name":        id.Hex(),
	})

	// Field kết thúc bằng id/_id được chuyển sang ObjectID
	assert.Equal(t, id, filter["categoryId"])
	assert.Equal(t, id, filter["customer_id"])
	// Field thường giữ nguyên chuỗi
	assert.Equal(t, id.Hex(), filter["name"])
}

func TestNormalizeFilter_OidWrapper(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"publisherId": map[string]interface{}{"$oid": id.Hex()},
	})
	assert.Equal(t, id, filter["publisherId"])
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err)

	err = h.validateFilter(map[string]interface{}{"name": "x"})
	assert.NoError(t, err)
}

func TestValidateFilter_OperatorWhitelist(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{
		"price": map[string]interface{}{"$gte": 10000},
	})
	assert.NoError(t, err)

	err = h.validateFilter(map[string]interface{}{
		"price": map[string]interface{}{"$where": "1 == 1"},
	})
	assert.Error(t, err)
}

func TestValidateFilter_MaxFields(t *testing.T) {
	h := newTestHandler()

	filter := map[string]interface{}{}
	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		filter[key] = 1
	}
	assert.Error(t, h.validateFilter(filter))
}
