package utility

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims là claims trong JWT đăng nhập của nhân viên
type AuthClaims struct {
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken tạo JWT HS256 cho nhân viên với thời gian sống expireHours giờ
func CreateToken(secret string, employeeID string, role string, expireHours int) (string, error) {
	if expireHours <= 0 {
		expireHours = 72
	}

	claims := AuthClaims{
		EmployeeID: employeeID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken kiểm tra chữ ký và hạn của token, trả về claims nếu hợp lệ
func ParseToken(secret string, tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token không hợp lệ")
	}
	return claims, nil
}
