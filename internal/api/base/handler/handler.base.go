// Package basehdl cung cấp handler CRUD generic và các tiện ích xử lý request/response.
// Handler domain embed BaseHandler để có đủ endpoint cơ bản, chỉ viết thêm các
// endpoint nghiệp vụ riêng.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// FilterOptions giới hạn filter do client gửi lên
type FilterOptions struct {
	DeniedFields     []string // Các field cấm xuất hiện trong filter/projection/sort
	AllowedOperators []string // Các toán tử MongoDB được phép
	MaxFields        int      // Số field tối đa trong một filter
}

// BaseHandler là handler CRUD generic cho một model T.
// CreateInput và UpdateInput là DTO của request body, được transform sang T
// qua struct tag `transform`.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T]
	filterOptions FilterOptions
}

// NewBaseHandler tạo BaseHandler với các giới hạn filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
				"$regex",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody parse request body bằng json.Decoder với UseNumber()
// để số không bị mất precision khi decode vào interface{}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body đang rỗng")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}
	return nil
}

// ValidateInput validate DTO bằng validator toàn cục (tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ProcessFilter parse filter JSON từ query string, chuẩn hóa ObjectID và validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết: %v", err),
			common.StatusBadRequest,
			err.Error(),
		)
	}

	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return bson.M(filter), nil
}

// normalizeFilter chuyển các string dạng ObjectID thành primitive.ObjectID.
// Áp dụng cho các field có tên kết thúc bằng "Id"/"ID" và field "_id".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := field == "_id" || (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2)
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}
	return normalized
}

// normalizeFilterValue chuẩn hóa giá trị filter, hỗ trợ nested map/array và $oid
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Extended JSON: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				return utility.String2ObjectID(oidStr)
			}
			return value
		}
	}

	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			return utility.String2ObjectID(strValue)
		}
		return strValue
	}

	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra filter theo FilterOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép (tối đa %d trường)", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		if utility.Contains(h.filterOptions.DeniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử '%s' không được phép. Các toán tử hợp lệ: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processMongoOptions parse options JSON từ query string (projection, sort, limit, skip).
// Sort được parse lại từ JSON gốc bằng json.Decoder để giữ nguyên thứ tự các key.
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết: %v", err),
			common.StatusBadRequest,
			err.Error(),
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	var sortBson bson.D
	if _, ok := rawOptions["sort"].(map[string]interface{}); ok {
		sortBson = parseSortWithOrder(optionsStr)
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if len(sortBson) > 0 {
			opts.SetSort(sortBson)
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if len(sortBson) > 0 {
		opts.SetSort(sortBson)
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// ProcessFindOptions parse options JSON thành *FindOptions, dùng cho handler ghi đè các hàm Find
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	opts, err := h.processMongoOptions(c, false)
	if err != nil {
		return nil, err
	}
	return opts.(*mongoopts.FindOptions), nil
}

// parseSortWithOrder parse phần "sort" trong options JSON, giữ thứ tự key như client gửi
func parseSortWithOrder(optionsJSON string) bson.D {
	sortBson := bson.D{}

	var tempOptions map[string]json.RawMessage
	if err := json.Unmarshal([]byte(optionsJSON), &tempOptions); err != nil {
		return sortBson
	}
	sortRaw, ok := tempOptions["sort"]
	if !ok {
		return sortBson
	}

	decoder := json.NewDecoder(bytes.NewReader(sortRaw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil || token != json.Delim('{') {
		return sortBson
	}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			break
		}
		field, ok := keyToken.(string)
		if !ok {
			continue
		}

		valueToken, err := decoder.Token()
		if err != nil {
			break
		}

		var sortValue int
		if num, ok := valueToken.(json.Number); ok {
			if intVal, err := num.Int64(); err == nil {
				sortValue = int(intVal)
			}
		}
		// Chỉ chấp nhận 1 hoặc -1
		if sortValue != 1 && sortValue != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}

	return sortBson
}

// validateMongoOptions kiểm tra options hợp lệ (field cấm, limit tối đa 1000)
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(opts map[string]interface{}) error {
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}

	for key := range opts {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options hợp lệ: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if projection, ok := opts["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(h.filterOptions.DeniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong projection vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if sort, ok := opts["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(h.filterOptions.DeniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong sort vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị sort cho trường '%s' phải là 1 hoặc -1", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if limit, ok := opts["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit phải lớn hơn 0", common.StatusBadRequest, nil)
		}
		if limit > 1000 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit không được vượt quá 1000", common.StatusBadRequest, nil)
		}
	}

	if skip, ok := opts["skip"].(float64); ok && skip < 0 {
		return common.NewError(common.ErrCodeValidationFormat, "Giá trị skip không được âm", common.StatusBadRequest, nil)
	}

	return nil
}

// ParsePagination parse page và limit từ query string (mặc định page=1, limit=10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}
	return page, limit
}

// GetIDFromParams lấy và validate ObjectID từ URL params
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// TransformCreateInputToModel chuyển DTO tạo mới sang Model theo struct tag `transform`.
// Field không có tag được copy trực tiếp khi cùng tên và type tương thích.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := transformStruct(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel chuyển DTO cập nhật sang Model (chỉ các field có giá trị)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := transformStruct(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// transformStruct copy field từ DTO sang model, áp dụng tag `transform` nếu có
func transformStruct(input interface{}, model interface{}) error {
	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model).Elem()
	if modelVal.Kind() != reflect.Struct {
		return fmt.Errorf("model phải là struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		if !inputField.CanInterface() {
			continue
		}
		fieldValue := inputField.Interface()
		targetFieldName := inputFieldType.Name

		transformTag := inputFieldType.Tag.Get("transform")
		if transformTag != "" {
			transformConfig, err := utility.ParseTransformTag(transformTag)
			if err != nil {
				return fmt.Errorf("lỗi parse transform tag cho field %s: %w", inputFieldType.Name, err)
			}

			modelField, found := modelType.FieldByName(targetFieldName)
			if !found {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("không tìm thấy field '%s' trong Model", targetFieldName)
			}

			transformedValue, err := utility.TransformFieldValue(fieldValue, transformConfig, modelField.Type)
			if err != nil {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("lỗi transform field '%s': %w", inputFieldType.Name, err)
			}
			if transformedValue == nil {
				continue
			}

			modelFieldVal := modelVal.FieldByName(targetFieldName)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				return fmt.Errorf("không thể set giá trị vào field '%s' trong Model", targetFieldName)
			}

			transformedVal := reflect.ValueOf(transformedValue)
			switch {
			case transformedVal.Type().AssignableTo(modelFieldVal.Type()):
				modelFieldVal.Set(transformedVal)
			case transformedVal.Type().ConvertibleTo(modelFieldVal.Type()):
				modelFieldVal.Set(transformedVal.Convert(modelFieldVal.Type()))
			default:
				return fmt.Errorf("không thể convert %v sang %v cho field '%s'", transformedVal.Type(), modelFieldVal.Type(), targetFieldName)
			}
			continue
		}

		// Không có transform tag: copy trực tiếp nếu cùng tên và type tương thích
		modelFieldVal := modelVal.FieldByName(targetFieldName)
		if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
			continue
		}
		inputValReflect := reflect.ValueOf(fieldValue)
		switch {
		case inputValReflect.Type().AssignableTo(modelFieldVal.Type()):
			modelFieldVal.Set(inputValReflect)
		case inputValReflect.Type().ConvertibleTo(modelFieldVal.Type()):
			modelFieldVal.Set(inputValReflect.Convert(modelFieldVal.Type()))
		}
	}

	return nil
}
