package auth

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are valid for 72 hours; the client re-validates on startup and
// falls back to the login screen once a token lapses.
const tokenTTL = 72 * time.Hour

var signKey []byte

// LoadSignKey reads the signing secret from JWT_SECRET. Called from Init;
// exposed so tests can reload after setting the env var.
func LoadSignKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	signKey = []byte(secret)
}

// IssueToken signs an HS256 token bound to the given user ID.
func IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(signKey)
}

// VerifyToken parses and validates a token string and returns the user ID
// it was issued for. Malformed, forged and expired tokens all error.
func VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signKey, nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}
