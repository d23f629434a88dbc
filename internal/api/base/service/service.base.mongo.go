// Package basesvc cung cấp service CRUD generic trên MongoDB.
// Mọi service domain đều embed BaseServiceMongoImpl để có đủ thao tác cơ bản,
// chỉ viết thêm các nghiệp vụ riêng của domain.
package basesvc

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	basemodels "github.com/dahlialee/Skybooks-sub000/internal/api/base/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateData mô tả một thao tác update theo từng phần
type UpdateData struct {
	Set         bson.M // Các field cần set giá trị mới
	SetOnInsert bson.M // Các field chỉ set khi upsert tạo mới
	Unset       bson.M // Các field cần xóa khỏi document
	Push        bson.M // Thêm phần tử vào mảng
	AddToSet    bson.M // Thêm phần tử vào mảng nếu chưa có
	Inc         bson.M // Tăng/giảm giá trị số
}

// toBson chuyển UpdateData thành update document của MongoDB
func (u *UpdateData) toBson() bson.M {
	update := bson.M{}
	if len(u.Set) > 0 {
		update["$set"] = u.Set
	}
	if len(u.SetOnInsert) > 0 {
		update["$setOnInsert"] = u.SetOnInsert
	}
	if len(u.Unset) > 0 {
		update["$unset"] = u.Unset
	}
	if len(u.Push) > 0 {
		update["$push"] = u.Push
	}
	if len(u.AddToSet) > 0 {
		update["$addToSet"] = u.AddToSet
	}
	if len(u.Inc) > 0 {
		update["$inc"] = u.Inc
	}
	return update
}

// BaseServiceMongo định nghĩa các thao tác CRUD cơ bản trên một collection
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	InsertMany(ctx context.Context, data []T) ([]T, error)

	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error)

	UpdateOne(ctx context.Context, filter interface{}, update *UpdateData) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, update *UpdateData) (int64, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData) (T, error)

	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	FindOneAndDelete(ctx context.Context, filter interface{}) (T, error)

	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	UpsertMany(ctx context.Context, data []T) ([]T, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)

	Collection() *mongo.Collection
}

// BaseServiceMongoImpl là implementation mặc định của BaseServiceMongo
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo service CRUD cho một collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	if collection == nil {
		panic("collection không được nil")
	}
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// Collection trả về collection bên dưới, dùng cho các truy vấn đặc thù (aggregate...)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// =========================================================
// Helpers chuyển đổi model <-> document
// =========================================================

// modelToDoc chuyển model thành bson.M qua bson marshal
func (s *BaseServiceMongoImpl[T]) modelToDoc(data T) (bson.M, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("không thể mã hóa dữ liệu: %v", err), common.StatusBadRequest, err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("không thể giải mã dữ liệu: %v", err), common.StatusBadRequest, err)
	}
	return doc, nil
}

// docToModel chuyển bson.M về model
func (s *BaseServiceMongoImpl[T]) docToModel(doc bson.M) (T, error) {
	var result T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// applyDefaults áp dụng tag `default` của model cho các field còn rỗng trong doc
func (s *BaseServiceMongoImpl[T]) applyDefaults(doc bson.M) {
	var zero T
	modelType := reflect.TypeOf(zero)
	if modelType == nil || modelType.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		defaultValue, ok := field.Tag.Lookup("default")
		if !ok {
			continue
		}
		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		current, exists := doc[bsonField]
		if exists && !isZeroValue(current) {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			doc[bsonField] = defaultValue
		case reflect.Bool:
			if v, err := strconv.ParseBool(defaultValue); err == nil {
				doc[bsonField] = v
			}
		case reflect.Int, reflect.Int32, reflect.Int64:
			if v, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				doc[bsonField] = v
			}
		case reflect.Float32, reflect.Float64:
			if v, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				doc[bsonField] = v
			}
		}
	}
}

// isZeroValue kiểm tra giá trị trong doc có phải zero value không
func isZeroValue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case int32:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}

// stripEmptyStrings xóa các field chuỗi rỗng khỏi doc trước khi insert.
// Cần thiết để các sparse unique index (email, phone) không đụng nhau
// giữa những document không có giá trị.
func stripEmptyStrings(doc bson.M) {
	for k, v := range doc {
		if str, ok := v.(string); ok && str == "" {
			delete(doc, k)
		}
	}
}

// ToUpdateData chuyển các field khác zero của model thành UpdateData ($set).
// Field chuỗi rỗng bị bỏ qua, field _id và createdAt không bao giờ vào $set.
func ToUpdateData[T any](model *T) (*UpdateData, error) {
	val := reflect.ValueOf(model).Elem()
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model phải là struct")
	}
	typ := val.Type()

	update := &UpdateData{Set: bson.M{}}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanInterface() {
			continue
		}

		bsonField := strings.Split(fieldType.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" || bsonField == "_id" || bsonField == "createdAt" || bsonField == "updatedAt" {
			continue
		}

		if field.IsZero() {
			continue
		}
		update.Set[bsonField] = field.Interface()
	}

	return update, nil
}

// =========================================================
// Create
// =========================================================

// InsertOne thêm mới một document, tự set createdAt/updatedAt (UnixMilli)
// và áp dụng giá trị default theo tag của model.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := s.modelToDoc(data)
	if err != nil {
		return zero, err
	}

	s.applyDefaults(doc)
	stripEmptyStrings(doc)

	now := utility.CurrentTimeInMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	// Để MongoDB tự sinh _id nếu chưa có
	if id, ok := doc["_id"].(primitive.ObjectID); ok && id.IsZero() {
		delete(doc, "_id")
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	doc["_id"] = result.InsertedID
	return s.docToModel(doc)
}

// InsertMany thêm nhiều document
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Danh sách dữ liệu đang rỗng", common.StatusBadRequest, nil)
	}

	now := utility.CurrentTimeInMilli()
	docs := make([]interface{}, 0, len(data))
	for _, item := range data {
		doc, err := s.modelToDoc(item)
		if err != nil {
			return nil, err
		}
		s.applyDefaults(doc)
		stripEmptyStrings(doc)
		doc["createdAt"] = now
		doc["updatedAt"] = now
		if id, ok := doc["_id"].(primitive.ObjectID); ok && id.IsZero() {
			delete(doc, "_id")
		}
		docs = append(docs, doc)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return s.FindManyByIds(ctx, toObjectIDs(result.InsertedIDs))
}

func toObjectIDs(ids []interface{}) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := id.(primitive.ObjectID); ok {
			out = append(out, oid)
		}
	}
	return out
}

// =========================================================
// Read
// =========================================================

// FindOne tìm một document theo filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	if filter == nil {
		filter = bson.M{}
	}

	err := s.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById tìm một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều document theo danh sách ObjectID
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Find tìm nhiều document theo filter
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindWithPagination tìm document theo filter với phân trang.
// totalPage = ceil(total/limit); skip và limit do service tự set để nhất quán.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.M{}
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: (total + limit - 1) / limit,
	}, nil
}

// =========================================================
// Update
// =========================================================

// buildUpdate chuẩn hóa UpdateData: luôn set updatedAt
func (s *BaseServiceMongoImpl[T]) buildUpdate(update *UpdateData) bson.M {
	if update == nil {
		update = &UpdateData{}
	}
	if update.Set == nil {
		update.Set = bson.M{}
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()
	return update.toBson()
}

// UpdateOne cập nhật document đầu tiên khớp filter, trả về bản sau update
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update *UpdateData) (T, error) {
	return s.FindOneAndUpdate(ctx, filter, update)
}

// UpdateMany cập nhật tất cả document khớp filter, trả về số lượng đã sửa
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update *UpdateData) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	result, err := s.collection.UpdateMany(ctx, filter, s.buildUpdate(update))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// UpdateById cập nhật document theo ObjectID, trả về bản sau update
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

// FindOneAndUpdate cập nhật và trả về document sau khi update
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData) (T, error) {
	var result T
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.collection.FindOneAndUpdate(ctx, filter, s.buildUpdate(update), opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// =========================================================
// Delete
// =========================================================

// DeleteOne xóa document đầu tiên khớp filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}

	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa tất cả document khớp filter, trả về số lượng đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById xóa document theo ObjectID
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// FindOneAndDelete xóa và trả về document vừa xóa
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (T, error) {
	var result T
	if filter == nil {
		filter = bson.M{}
	}

	err := s.collection.FindOneAndDelete(ctx, filter).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// =========================================================
// Other
// =========================================================

// CountDocuments đếm số document khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct lấy danh sách giá trị duy nhất của một field
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}

	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// Upsert cập nhật document khớp filter, tạo mới nếu chưa có.
// createdAt chỉ set khi tạo mới, updatedAt luôn được cập nhật.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T
	if filter == nil {
		filter = bson.M{}
	}

	doc, err := s.modelToDoc(data)
	if err != nil {
		return zero, err
	}
	s.applyDefaults(doc)
	stripEmptyStrings(doc)

	now := utility.CurrentTimeInMilli()
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = now

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result T
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// UpsertMany upsert từng document theo _id (tạo mới nếu _id rỗng)
func (s *BaseServiceMongoImpl[T]) UpsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Danh sách dữ liệu đang rỗng", common.StatusBadRequest, nil)
	}

	results := make([]T, 0, len(data))
	for _, item := range data {
		doc, err := s.modelToDoc(item)
		if err != nil {
			return nil, err
		}

		id, _ := doc["_id"].(primitive.ObjectID)
		if id.IsZero() {
			inserted, err := s.InsertOne(ctx, item)
			if err != nil {
				return nil, err
			}
			results = append(results, inserted)
			continue
		}

		upserted, err := s.Upsert(ctx, bson.M{"_id": id}, item)
		if err != nil {
			return nil, err
		}
		results = append(results, upserted)
	}
	return results, nil
}

// DocumentExists kiểm tra có document nào khớp filter không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if filter == nil {
		filter = bson.M{}
	}

	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
