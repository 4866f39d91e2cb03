package services

import (
	"os"
	"time"

	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"

	"github.com/dgrijalva/jwt-go"
)

const tokenTTL = 7 * 24 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fallback-secret-do-not-use-in-production"
	}
	return []byte(secret)
}

// GenerateToken phát hành token đăng nhập cho user.
func GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": float64(userID),
		"email":  email,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInternal, "Could not sign token", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry, returning the user identity
// embedded in the token.
func ParseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Không thể parse token", nil)
	}

	userID, okID := claims["userId"].(float64)
	if !okID || userID <= 0 {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	email, _ := claims["email"].(string)

	return uint(userID), email, nil
}
