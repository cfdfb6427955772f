package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJWT sets the signing secret. Must be called once at startup before any
// token is issued or validated.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// Claims represents JWT claims
type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Type     string `json:"type"` // 'access' or 'refresh'
	jwt.RegisteredClaims
}

// GenerateToken generates a short-lived access token for a user
func GenerateToken(userID, email, userType string) (string, error) {
	return signToken(userID, email, userType, "access", 15*time.Minute)
}

// GenerateRefreshToken generates a long-lived refresh token for a user
func GenerateRefreshToken(userID, email, userType string) (string, error) {
	return signToken(userID, email, userType, "refresh", 7*24*time.Hour)
}

func signToken(userID, email, userType, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken validates and parses a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}
