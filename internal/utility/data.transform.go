package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig chứa cấu hình được parse từ tag transform của DTO
type TransformTagConfig struct {
	Type     string // str_objectid, str_objectid_ptr, str_int64, str_bool
	Default  string // Giá trị mặc định khi input rỗng
	Optional bool   // Không có giá trị thì bỏ qua field
	Required bool   // Bắt buộc phải có giá trị
}

// ParseTransformTag parse tag transform thành config.
// Format: "[type][,default=<value>][,optional|required]"
// Ví dụ:
//   - transform:"str_objectid"           string → primitive.ObjectID
//   - transform:"str_objectid_ptr"       string → *primitive.ObjectID
//   - transform:"str_objectid,optional"  bỏ qua nếu rỗng
func ParseTransformTag(tag string) (*TransformTagConfig, error) {
	config := &TransformTagConfig{}
	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		switch {
		case part == "optional":
			config.Optional = true
		case part == "required":
			config.Required = true
		case strings.Contains(part, "="):
			kv := strings.SplitN(part, "=", 2)
			if strings.TrimSpace(kv[0]) == "default" {
				config.Default = strings.TrimSpace(kv[1])
			}
		}
	}

	return config, nil
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	// Input rỗng: dùng default / bỏ qua / báo lỗi theo flags
	empty := value == nil
	if strValue, ok := value.(string); ok && strValue == "" {
		empty = true
	}
	if empty {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		return nil, nil
	}

	return applyTransform(value, config)
}

// applyTransform áp dụng transform type cho value
func applyTransform(value interface{}, config *TransformTagConfig) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	default:
		// Không transform, trả giá trị gốc
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("không thể convert '%s' sang ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

func transformToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("không thể convert %T sang bool", value)
	}
}
