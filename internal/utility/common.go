// Package utility chứa các helper dùng chung: chuyển đổi ObjectID, thời gian,
// cache TTL, mã hóa mật khẩu và token đăng nhập.
package utility

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CurrentTimeInMilli trả về thời gian hiện tại theo UnixMilli
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// String2ObjectID chuyển chuỗi hex thành ObjectID, trả về NilObjectID nếu không hợp lệ
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray chuyển mảng chuỗi thành mảng ObjectID
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// ConvertStruct chuyển đổi một struct sang struct khác qua JSON
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(jsonData, target); err != nil {
		return nil, err
	}
	return target, nil
}
