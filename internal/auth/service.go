package auth

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Service validates the session tokens issued by the shop's account system.
// The storefront never issues tokens itself; it only needs the customer
// identity to forward cart and chat calls.
type Service struct {
	secret []byte
}

// NewService creates an auth service using JWT_SECRET from the environment
func NewService() *Service {
	return &Service{secret: []byte(getEnvOrDefault("JWT_SECRET", "cafehub-dev-secret"))}
}

// TokenClaims represents the session token claims
type TokenClaims struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

// ValidateToken parses and validates a session token
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.CustomerID == "" {
		return nil, errors.New("token has no customer id")
	}
	return claims, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
