package utility

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// jwtClaims chứa data được mã hóa trong JWT token.
type jwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho phiên đăng nhập của người dùng.
// @params - secret ký token, userID, time (hex) và số ngẫu nhiên để token mỗi lần đăng nhập khác nhau
// @returns - map chứa token và lỗi nếu có
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret chưa được cấu hình")
	}

	claims := jwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("lỗi khi ký JWT token: %v", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã JWT token và trả về userID bên trong.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token không hợp lệ")
	}
	return claims.UserID, nil
}
