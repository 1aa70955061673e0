package utils

import (
	"errors"
	"time"

	"cafehub/pkg/config"
	"cafehub/pkg/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the custom JWT claims
type TokenClaims struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a session JWT for a user
func GenerateToken(userID uint, email string, role models.Role) (string, error) {
	return generateToken(userID, email, role, sessionDuration())
}

// GenerateAuthCode generates a short-lived token used as a one-time login
// code in the redirect flow (exchanged for a session at /auth/callback).
func GenerateAuthCode(userID uint, email string, role models.Role) (string, error) {
	return generateToken(userID, email, role, 5*time.Minute)
}

func generateToken(userID uint, email string, role models.Role, duration time.Duration) (string, error) {
	claims := TokenClaims{
		ID:    userID,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func sessionDuration() time.Duration {
	switch config.AppConfig.JWTExpiresIn {
	case "7d":
		return 7 * 24 * time.Hour
	case "1d":
		return 24 * time.Hour
	case "30m":
		return 30 * time.Minute
	default:
		return 7 * 24 * time.Hour
	}
}

// VerifyToken verifies and parses a JWT token
func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
