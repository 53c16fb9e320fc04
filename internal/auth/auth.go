// server/internal/auth/auth.go
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is used when JWT_EXPIRE is absent or unparseable.
const DefaultTokenTTL = 30 * 24 * time.Hour

// JWTClaims defines the payload for the JWT. There is a single static admin
// principal, so UserID is always "admin" for now.
type JWTClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckAdminPassword compares the submitted password against the configured
// admin credential. A bcrypt hash in ADMIN_PASSWORD is verified with bcrypt;
// a plain value falls back to a constant-time comparison.
func CheckAdminPassword(password, configured string) bool {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return CheckPasswordHash(password, configured)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(configured)) == 1
}

// GenerateToken signs a JWT for the given principal with the given lifetime.
func GenerateToken(secret []byte, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the claims. Invalid
// and expired tokens are rejected alike; callers surface a uniform 401.
func ParseToken(secret []byte, tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ParseTTL converts a JWT_EXPIRE duration string into a time.Duration,
// falling back to the 30 day default.
func ParseTTL(expire string) time.Duration {
	if expire == "" {
		return DefaultTokenTTL
	}
	ttl, err := time.ParseDuration(expire)
	if err != nil || ttl <= 0 {
		return DefaultTokenTTL
	}
	return ttl
}
