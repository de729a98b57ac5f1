package utils

import (
	"fmt"
	"medibook-service/internal/app/models"

	"github.com/golang-jwt/jwt/v4"
)

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ParseSessionToken verifies a bearer token issued by the credential service
// and extracts the caller identity from its claims.
func ParseSessionToken(tokenString, secret string) (*models.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return &models.Session{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
