package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "trashtalk"

// Claims defines the data stored inside the JWT.
type Claims struct {
	Sender string `json:"sender"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT identifying sender.
func GenerateToken(secret []byte, sender string, duration time.Duration) (string, error) {
	if err := ValidateSender(sender); err != nil {
		return "", err
	}
	now := time.Now()
	claims := &Claims{
		Sender: sender,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sender,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if err := ValidateSender(claims.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender claim: %w", err)
	}
	return claims, nil
}
