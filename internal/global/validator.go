package global

import (
	"context"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("exists", validateExists)
	_ = Validate.RegisterValidation("object_id", validateObjectID)
}

// validateNoXSS chặn các pattern script injection phổ biến trong input text
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword yêu cầu độ dài >= 8 và ít nhất 3/4 nhóm ký tự
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	for _, ok := range []bool{hasUpper, hasLower, hasNumber, hasSpecial} {
		if ok {
			conditions++
		}
	}
	return conditions >= 3
}

// validateObjectID kiểm tra chuỗi là ObjectID hex hợp lệ (chuỗi rỗng = optional, bỏ qua)
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateExists kiểm tra ObjectID tồn tại trong collection (foreign key validation)
// Format: validate:"exists=<collection_name>"
// Ví dụ: validate:"exists=category_products"
func validateExists(fl validator.FieldLevel) bool {
	value := fl.Field()

	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	var objID primitive.ObjectID
	switch v := value.Interface().(type) {
	case string:
		if v == "" {
			return true // chuỗi rỗng = optional, bỏ qua
		}
		var err error
		objID, err = primitive.ObjectIDFromHex(v)
		if err != nil {
			return false
		}
	case primitive.ObjectID:
		if v == primitive.NilObjectID {
			return true
		}
		objID = v
	case *primitive.ObjectID:
		if v == nil {
			return true
		}
		objID = *v
	default:
		return false
	}

	collection, exist := RegistryCollections.Get(collectionName)
	if !exist {
		return false
	}

	count, err := collection.CountDocuments(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return false
	}
	return count > 0
}
