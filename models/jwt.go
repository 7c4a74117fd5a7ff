package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AccessCookieName = "access_token"

type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Kind   string `json:"kind"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// NewAccessToken signs an authentication token for user valid until expiry
func NewAccessToken(user User, secret string, expiry time.Time) (string, error) {
	claims := JWTClaims{
		UserID: user.UserID,
		Email:  user.Email,
		Kind:   user.Kind,
		Scope:  "authentication",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.Scope != "authentication" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
